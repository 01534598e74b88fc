package ports

// HistoryFileFinder defines the contract for locating the line history file.
type HistoryFileFinder interface {
	Find() (string, error)
}
