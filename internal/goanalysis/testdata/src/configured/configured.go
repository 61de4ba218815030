package configured

type Desc struct {
	// tsorder: keep-sorted
	Alfa int
	Beta int // want `Expected "Beta" to come before "Alfa"`
}

type Override struct {
	// tsorder: keep-sorted order=asc
	Alfa int
	Beta int
}
