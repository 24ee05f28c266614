package qbo

// Fixed vocabularies defined by the QBO schema. Values are reproduced exactly,
// including the space in "Accounts Receivable".

const (
	AccountTypeBank       = "Bank"
	AccountTypeExpense    = "Expense"
	AccountTypeReceivable = "Accounts Receivable"

	AccountSubTypeReceivable       = "AccountsReceivable"
	AccountSubTypeServiceFeeIncome = "ServiceFeeIncome"

	ItemTypeInventory = "Inventory"
	ItemTypeService   = "Service"

	PaymentTypeCash       = "Cash"
	PaymentTypeCheck      = "Check"
	PaymentTypeCreditCard = "CreditCard"
	PaymentTypeOther      = "Other"

	TaxApplicableOnSales    = "Sales"
	TaxApplicableOnPurchase = "Purchase"
)

// AccountTypes lists the account types the builders can emit.
var AccountTypes = []string{AccountTypeBank, AccountTypeExpense, AccountTypeReceivable}

// AccountSubTypes lists the account sub-types the builders can emit.
var AccountSubTypes = []string{AccountSubTypeReceivable, AccountSubTypeServiceFeeIncome}

// ItemTypes lists the item types the builders can emit.
var ItemTypes = []string{ItemTypeInventory, ItemTypeService}

// PaymentTypes lists the sales-receipt payment types.
var PaymentTypes = []string{PaymentTypeCash, PaymentTypeCheck, PaymentTypeCreditCard, PaymentTypeOther}

// LinkedTxnTypes is the transaction-type vocabulary accepted by
// LinkedTransactionBuilder.TxnType.
var LinkedTxnTypes = []string{
	"APCreditCard",
	"ARRefundCreditCard",
	"Bill",
	"BillPaymentCheck",
	"BuildAssembly",
	"CarryOver",
	"CashPurchase",
	"Charge",
	"Check",
	"CreditMemo",
	"Deposit",
	"EFPLiabilityCheck",
	"EFTBillPayment",
	"EFTRefund",
	"Estimate",
	"Expense",
	"InventoryAdjustment",
	"InventoryTransfer",
	"Invoice",
	"ItemReceipt",
	"JournalEntry",
	"LiabilityAdjustment",
	"Paycheck",
	"Payment",
	"PayrollLiabilityCheck",
	"PriorPayment",
	"PurchaseOrder",
	"ReceivePayment",
	"RefundCheck",
	"SalesOrder",
	"SalesReceipt",
	"SalesTaxPaymentCheck",
	"TimeActivity",
	"Transfer",
	"VendorCredit",
	"YTDAdjustment",
}
