package qbo

import "time"

// ItemRequestBuilder builds an Item create/update body.
type ItemRequestBuilder struct {
	BaseBuilder
}

// NewItem returns an empty item builder.
func NewItem() *ItemRequestBuilder {
	return &ItemRequestBuilder{BaseBuilder: newBaseBuilder()}
}

// ResourceName implements Resource.
func (b *ItemRequestBuilder) ResourceName() string { return "Item" }

// Name sets Name (max 100 characters).
func (b *ItemRequestBuilder) Name(value string) *ItemRequestBuilder {
	b.setString("Name", value, MaxNameLength)
	return b
}

// Description sets Description (max 4000 characters).
func (b *ItemRequestBuilder) Description(value string) *ItemRequestBuilder {
	b.setString("Description", value, MaxDescriptionLength)
	return b
}

// Sku sets Sku (max 100 characters).
func (b *ItemRequestBuilder) Sku(value string) *ItemRequestBuilder {
	b.setString("Sku", value, MaxSkuLength)
	return b
}

// TypeInventory makes the item a tracked inventory item. QBO then also
// expects AssetAccountRef, QtyOnHand and InvStartDate.
func (b *ItemRequestBuilder) TypeInventory() *ItemRequestBuilder {
	b.set("Type", ItemTypeInventory)
	return b
}

// TypeService sets Type to "Service".
func (b *ItemRequestBuilder) TypeService() *ItemRequestBuilder {
	b.set("Type", ItemTypeService)
	return b
}

// UnitPrice sets UnitPrice.
func (b *ItemRequestBuilder) UnitPrice(value float64) *ItemRequestBuilder {
	b.set("UnitPrice", value)
	return b
}

// PurchaseCost sets PurchaseCost.
func (b *ItemRequestBuilder) PurchaseCost(value float64) *ItemRequestBuilder {
	b.set("PurchaseCost", value)
	return b
}

// QtyOnHand sets QtyOnHand.
func (b *ItemRequestBuilder) QtyOnHand(value float64) *ItemRequestBuilder {
	b.set("QtyOnHand", value)
	return b
}

// InvStartDate sets InvStartDate as a YYYY-MM-DDZ date.
func (b *ItemRequestBuilder) InvStartDate(date time.Time) *ItemRequestBuilder {
	b.setDate("InvStartDate", date)
	return b
}

// TrackQtyOnHand sets the TrackQtyOnHand flag.
func (b *ItemRequestBuilder) TrackQtyOnHand(value bool) *ItemRequestBuilder {
	b.set("TrackQtyOnHand", value)
	return b
}

// Taxable sets the Taxable flag.
func (b *ItemRequestBuilder) Taxable(value bool) *ItemRequestBuilder {
	b.set("Taxable", value)
	return b
}

// Active sets the Active flag.
func (b *ItemRequestBuilder) Active(value bool) *ItemRequestBuilder {
	b.set("Active", value)
	return b
}

// IncomeAccountRef embeds a snapshot of ref.
func (b *ItemRequestBuilder) IncomeAccountRef(ref *RefBuilder) *ItemRequestBuilder {
	b.embed("IncomeAccountRef", ref)
	return b
}

// ExpenseAccountRef embeds a snapshot of ref.
func (b *ItemRequestBuilder) ExpenseAccountRef(ref *RefBuilder) *ItemRequestBuilder {
	b.embed("ExpenseAccountRef", ref)
	return b
}

// AssetAccountRef embeds a snapshot of ref.
func (b *ItemRequestBuilder) AssetAccountRef(ref *RefBuilder) *ItemRequestBuilder {
	b.embed("AssetAccountRef", ref)
	return b
}
