package fixes

type Basic struct {
	// tsorder: keep-sorted
	Zeta int
	Beta int // want `Expected "Beta" to come before "Zeta"`
	Mono int
}

type Sorted struct {
	// tsorder: keep-sorted
	Alfa int
	Beta int
}

type Unmarked struct {
	Zeta int
	Beta int
}

type Groups struct {
	// tsorder: keep-sorted { groups: [exported-field, field] }
	zulu int
	Beta int // want `Expected "Beta" \(exported-field\) to come before "zulu" \(field\)`
	Alfa int // want `Expected "Alfa" to come before "Beta"`
}

type Sections struct {
	// tsorder: keep-sorted partition-by-comment
	// Inputs
	Read int
	Open int // want `Expected "Open" to come before "Read"`

	// Outputs
	Sync int
	Emit int // want `Expected "Emit" to come before "Sync"`
}

type Legacy struct {
	// tsorder: keep-sorted deprecated-at-end
	// Deprecated: use Name.
	Alfa int
	Name int // want `Expected "Name" \(unknown\) to come before "Alfa" \(unknown\)`
	Beta int // want `Expected "Beta" to come before "Name"`
}

type Store interface {
	// tsorder: keep-sorted
	Save() error
	Load() error // want `Expected "Load" to come before "Save"`
}
