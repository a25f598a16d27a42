package fixture

import (
	"field-processor/kind"
	"field-processor/node"
)

// Account keeps its state unexported and exposes it through a node.Table.
type Account struct {
	owner   string
	balance int64
	tags    []string
}

func NewAccount(owner string, balance int64, tags ...string) *Account {
	return &Account{owner: owner, balance: balance, tags: tags}
}

func (a *Account) Owner() string  { return a.owner }
func (a *Account) Balance() int64 { return a.balance }
func (a *Account) Tags() []string { return a.tags }

var accountTable = node.NewTable[Account]().
	Add("owner", node.Accessor[Account]{
		Kind: kind.KindString,
		Get:  func(a *Account) any { return a.owner },
		Set:  func(a *Account, v any) { a.owner, _ = v.(string) },
	}).
	Add("balance", node.Accessor[Account]{
		Kind: kind.KindInt64,
		Get:  func(a *Account) any { return a.balance },
		Set:  func(a *Account, v any) { a.balance, _ = v.(int64) },
	}).
	Add("tags", node.Accessor[Account]{
		Kind: kind.KindReference,
		Get:  func(a *Account) any { return a.tags },
		Set:  func(a *Account, v any) { a.tags, _ = v.([]string) },
	})

// Object exposes the account to the processor.
func (a *Account) Object() node.Object {
	return accountTable.Bind(a)
}
