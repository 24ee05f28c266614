package qbo

// AccountRequestBuilder builds an Account create/update body.
type AccountRequestBuilder struct {
	BaseBuilder
}

// NewAccount returns an empty account builder.
func NewAccount() *AccountRequestBuilder {
	return &AccountRequestBuilder{BaseBuilder: newBaseBuilder()}
}

// ResourceName implements Resource.
func (b *AccountRequestBuilder) ResourceName() string { return "Account" }

// Name sets Name (max 100 characters).
func (b *AccountRequestBuilder) Name(value string) *AccountRequestBuilder {
	b.setString("Name", value, MaxNameLength)
	return b
}

// AcctNum sets the user-facing account number.
func (b *AccountRequestBuilder) AcctNum(value string) *AccountRequestBuilder {
	b.setString("AcctNum", value, MaxAcctNumLength)
	return b
}

// Description sets Description (max 4000 characters).
func (b *AccountRequestBuilder) Description(value string) *AccountRequestBuilder {
	b.setString("Description", value, MaxDescriptionLength)
	return b
}

// AccountTypeBank sets AccountType to "Bank".
func (b *AccountRequestBuilder) AccountTypeBank() *AccountRequestBuilder {
	b.set("AccountType", AccountTypeBank)
	return b
}

// AccountTypeExpense sets AccountType to "Expense".
func (b *AccountRequestBuilder) AccountTypeExpense() *AccountRequestBuilder {
	b.set("AccountType", AccountTypeExpense)
	return b
}

// AccountTypeReceivable sets AccountType to "Accounts Receivable".
func (b *AccountRequestBuilder) AccountTypeReceivable() *AccountRequestBuilder {
	b.set("AccountType", AccountTypeReceivable)
	return b
}

// AccountSubTypeReceivable sets AccountSubType to "AccountsReceivable".
func (b *AccountRequestBuilder) AccountSubTypeReceivable() *AccountRequestBuilder {
	b.set("AccountSubType", AccountSubTypeReceivable)
	return b
}

// AccountSubTypeServiceFeeIncome sets AccountSubType to "ServiceFeeIncome".
func (b *AccountRequestBuilder) AccountSubTypeServiceFeeIncome() *AccountRequestBuilder {
	b.set("AccountSubType", AccountSubTypeServiceFeeIncome)
	return b
}

// SubAccount marks the account as a child of ParentRef.
func (b *AccountRequestBuilder) SubAccount(value bool) *AccountRequestBuilder {
	b.set("SubAccount", value)
	return b
}

// ParentRef embeds a snapshot of ref.
func (b *AccountRequestBuilder) ParentRef(ref *RefBuilder) *AccountRequestBuilder {
	b.embed("ParentRef", ref)
	return b
}

// CurrencyRef embeds a snapshot of ref.
func (b *AccountRequestBuilder) CurrencyRef(ref *RefBuilder) *AccountRequestBuilder {
	b.embed("CurrencyRef", ref)
	return b
}

// TaxCodeRef embeds a snapshot of ref.
func (b *AccountRequestBuilder) TaxCodeRef(ref *RefBuilder) *AccountRequestBuilder {
	b.embed("TaxCodeRef", ref)
	return b
}

// Active sets the Active flag.
func (b *AccountRequestBuilder) Active(value bool) *AccountRequestBuilder {
	b.set("Active", value)
	return b
}
