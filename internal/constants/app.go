package constants

const (
	AppName = "tally"

	// SnapshotKey is the fixed key the ledger snapshot is stored under.
	SnapshotKey = "tally.transactions"

	ExportFileName = "tally_transactions.json"
	DBFileName     = "tally.db"

	DefaultCurrency = "USD"
	DefaultLimit    = 50
)
