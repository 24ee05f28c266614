package qbo

// MaxBatchItems is the number of operations QBO accepts in one batch call.
const MaxBatchItems = 30

const (
	OperationCreate = "create"
	OperationUpdate = "update"
	OperationDelete = "delete"
)

// BatchRequestBuilder builds a batch body:
//
//	{"BatchItemRequest": [{"bId": "1", "operation": "create", "Invoice": {...}}]}
type BatchRequestBuilder struct {
	BaseBuilder
	count int
}

// NewBatch returns a batch builder with an empty BatchItemRequest sequence.
func NewBatch() *BatchRequestBuilder {
	b := &BatchRequestBuilder{BaseBuilder: newBaseBuilder()}
	b.set("BatchItemRequest", []any{})
	return b
}

// ResourceName is the endpoint the batch body is posted to.
func (b *BatchRequestBuilder) ResourceName() string { return "batch" }

// Len returns the number of items added so far.
func (b *BatchRequestBuilder) Len() int {
	return b.count
}

// AddCreate appends a create operation for resource, identified by bID in the
// batch response.
func (b *BatchRequestBuilder) AddCreate(bID string, resource Resource) *BatchRequestBuilder {
	b.add(bID, OperationCreate, resource)
	return b
}

// AddUpdate appends an update operation. resource must carry Id and SyncToken.
func (b *BatchRequestBuilder) AddUpdate(bID string, resource Resource) *BatchRequestBuilder {
	b.add(bID, OperationUpdate, resource)
	return b
}

// AddDelete appends a delete operation.
func (b *BatchRequestBuilder) AddDelete(bID string, resource Resource) *BatchRequestBuilder {
	b.add(bID, OperationDelete, resource)
	return b
}

func (b *BatchRequestBuilder) add(bID, operation string, resource Resource) {
	if b.rejectNil("BatchItemRequest."+bID, resource) {
		return
	}
	if b.count >= MaxBatchItems {
		b.fail(&ValidationError{Field: "BatchItemRequest", Value: bID, Rule: RuleCount, Limit: MaxBatchItems})
		return
	}
	if b.absorbErrors("BatchItemRequest."+bID, resource) {
		return
	}

	item := NewRequest()
	item.Set("bId", bID)
	item.Set("operation", operation)
	item.Set(resource.ResourceName(), resource.Request().Clone())
	if err := b.request.Append("BatchItemRequest", item); err != nil {
		b.fail(err)
		return
	}
	b.count++
}
