package database

type migration struct {
	id          MigrationId
	description string
	query       string
}

var migrations = []migration{
	{
		id:          0,
		description: "Media index",
		query: `
			CREATE TABLE media (
			    id INTEGER PRIMARY KEY,
			    data TEXT,
			    mime_type TEXT,
			    added_timestamp DATETIME,

			    UNIQUE (data)
			);
		`,
	},
}
