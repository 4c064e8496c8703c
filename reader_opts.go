package mtree

// Option configures a Reader.
type Option func(*Reader)

// WithStartingDirectory sets the virtual current directory that relative
// entry names resolve against. It replaces the default of the process
// working directory.
func WithStartingDirectory(dir string) Option {
	return func(r *Reader) {
		r.dir = dir
	}
}

// WithStrictDirectoryPop makes a ".." line with no parent directory left
// a per-line error instead of a no-op.
func WithStrictDirectoryPop() Option {
	return func(r *Reader) {
		r.strictPop = true
	}
}
