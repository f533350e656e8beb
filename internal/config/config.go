package config

// Destination defines where a batch lands: the store connection string and
// the table that gets overwritten.
type Destination struct {
	ConnString, Table string
}

// NewDestinationConfig creates a new Destination config
func NewDestinationConfig(connString, table string) Destination {
	return Destination{
		ConnString: connString,
		Table:      table,
	}
}

// Source defines the configuration for the extraction stage. An empty
// CSVPath selects the built-in fixed dataset.
type Source struct {
	CSVPath string
}

// NewSourceConfig creates a new Source config
func NewSourceConfig(csvPath string) Source {
	return Source{
		CSVPath: csvPath,
	}
}
