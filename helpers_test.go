package prefid

type testPrefix struct{}

func (testPrefix) Prefix() string { return "test" }

type TestID struct {
	ID[testPrefix]
}

type test1Prefix struct{}

func (test1Prefix) Prefix() string { return "test1" }

type Test1ID struct {
	ID[test1Prefix]
}

type quotedPrefix struct{}

func (quotedPrefix) Prefix() string { return `q"uo\te` }

type QuotedID struct {
	ID[quotedPrefix]
}

const nilTestID = "test-00000000-0000-0000-0000-000000000000"
