package db

// DB is a generic database port. Repositories take it instead of a
// concrete driver handle.
type DB interface {
	Conn() any
}
