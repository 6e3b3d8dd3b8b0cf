package models

import "time"

type AccountState string

const (
	AccountStateCreated    AccountState = "created"
	AccountStateDeployed   AccountState = "deployed"
	AccountStateUndeployed AccountState = "undeployed"
)

// Account is a registered trading account. ID is the terminal-side account id
// used on every upstream call.
type Account struct {
	ID         string            `json:"id"`
	Login      string            `json:"login"`
	ServerName string            `json:"serverName"`
	State      AccountState      `json:"state"`
	Metadata   map[string]string `json:"metadata,omitempty"`
	CreatedAt  time.Time         `json:"createdAt"`
}
