package embedded

import "io"

type Base struct{}

type Service struct {
	// tsorder: keep-sorted { groups: [embedded, exported-field, field] }
	name string
	Addr string // want `Expected "Addr" \(exported-field\) to come before "name" \(field\)`
	*Base        // want `Expected "\*Base" \(embedded\) to come before "Addr" \(exported-field\)`
	io.Reader
}

type ReadCloser interface {
	// tsorder: keep-sorted { groups: [embedded, method] }
	Close() error
	io.Reader // want `Expected "io.Reader" \(embedded\) to come before "Close" \(method\)`
}

type Outer struct {
	// tsorder: keep-sorted
	Zeta struct {
		// tsorder: keep-sorted
		b int
		a int // want `Expected "a" to come before "b"`
	}
	Alfa int // want `Expected "Alfa" to come before "Zeta"`
}

type Broken struct {
	/* tsorder: keep-sorted type=bogus */ // want `Invalid keep-sorted configuration`
	b int
	a int
}
