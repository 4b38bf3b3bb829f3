package heredity

// WhichSQLiteDriver reports which SQLite driver this build uses for
// pedigree index files ("sqlite3" under cgo, "sqlite" otherwise).
func WhichSQLiteDriver() string {
	return whichSQLiteDriver
}
