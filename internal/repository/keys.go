package repository

const (
	AccountIndexKey      = "accounts"
	RecentDrawResultsKey = "recentDrawResults"
)

func AccountKey(accountID string) string {
	return "account:" + accountID
}

func BetsKey(accountID string) string {
	return "bets:" + accountID
}

func TransactionsKey(accountID string) string {
	return "transactions:" + accountID
}

func AutoBetConfigKey(accountID string) string {
	return "autoBetConfig:" + accountID
}

func SettingsKey(accountID string) string {
	return "settings:" + accountID
}
