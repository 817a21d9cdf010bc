package cli

type Options struct {
	Query        string
	TablePath    string
	TableSheet   string
	RequireTable bool
	JSON         bool
}
