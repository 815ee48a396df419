package repository

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"fieldflow/internal/domain/entities"
	"fieldflow/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

// fakeDynamo records requests and returns canned responses.
type fakeDynamo struct {
	getItem      map[string]itemMap
	putErr       error
	updateErr    error
	updateOut    itemMap
	transactErr  error
	queryPages   []*dynamodb.QueryOutput
	unprocessed  int
	missing      map[string]bool
	puts         []*dynamodb.PutItemInput
	updates      []*dynamodb.UpdateItemInput
	transactions []*dynamodb.TransactWriteItemsInput
	batchCalls   []*dynamodb.BatchGetItemInput
	queries      []*dynamodb.QueryInput
}

func (f *fakeDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	id := in.Key["id"].(*types.AttributeValueMemberS).Value
	return &dynamodb.GetItemOutput{Item: f.getItem[id]}, nil
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.puts = append(f.puts, in)
	return &dynamodb.PutItemOutput{}, f.putErr
}

func (f *fakeDynamo) UpdateItem(_ context.Context, in *dynamodb.UpdateItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	f.updates = append(f.updates, in)
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	return &dynamodb.UpdateItemOutput{Attributes: f.updateOut}, nil
}

func (f *fakeDynamo) Query(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	f.queries = append(f.queries, in)
	if len(f.queryPages) == 0 {
		return &dynamodb.QueryOutput{}, nil
	}
	page := f.queryPages[0]
	f.queryPages = f.queryPages[1:]
	return page, nil
}

func (f *fakeDynamo) BatchGetItem(_ context.Context, in *dynamodb.BatchGetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.BatchGetItemOutput, error) {
	f.batchCalls = append(f.batchCalls, in)
	out := &dynamodb.BatchGetItemOutput{Responses: map[string][]itemMap{}}
	for table, ka := range in.RequestItems {
		keys := ka.Keys
		if f.unprocessed > 0 && len(keys) > f.unprocessed {
			out.UnprocessedKeys = map[string]types.KeysAndAttributes{table: {Keys: keys[len(keys)-f.unprocessed:]}}
			keys = keys[:len(keys)-f.unprocessed]
			f.unprocessed = 0
		}
		for _, k := range keys {
			id := k["id"].(*types.AttributeValueMemberS).Value
			if f.missing[id] {
				continue
			}
			out.Responses[table] = append(out.Responses[table], itemMap{
				"id":        &types.AttributeValueMemberS{Value: id},
				"owner_id":  &types.AttributeValueMemberS{Value: "owner-1"},
				"client_id": &types.AttributeValueMemberS{Value: "c1"},
			})
		}
	}
	return out, nil
}

func (f *fakeDynamo) TransactWriteItems(_ context.Context, in *dynamodb.TransactWriteItemsInput, _ ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error) {
	f.transactions = append(f.transactions, in)
	return &dynamodb.TransactWriteItemsOutput{}, f.transactErr
}

func canceledByCondition() error {
	return &types.TransactionCanceledException{
		Message: aws.String("Transaction cancelled"),
		CancellationReasons: []types.CancellationReason{
			{Code: aws.String("None")},
			{Code: aws.String("ConditionalCheckFailed")},
		},
	}
}

func TestAsConflict(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		conflict bool
	}{
		{name: "nil", err: nil},
		{name: "conditional check", err: &types.ConditionalCheckFailedException{Message: aws.String("failed")}, conflict: true},
		{name: "wrapped conditional check", err: fmt.Errorf("put: %w", &types.ConditionalCheckFailedException{}), conflict: true},
		{name: "transaction canceled by condition", err: canceledByCondition(), conflict: true},
		{name: "transaction canceled by throttling", err: &types.TransactionCanceledException{
			CancellationReasons: []types.CancellationReason{{Code: aws.String("ThrottlingError")}},
		}},
		{name: "other", err: errors.New("network")},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := asConflict(tc.err)
			if errors.Is(got, interfaces.ErrConflict) != tc.conflict {
				t.Fatalf("asConflict(%v) = %v, conflict expected=%t", tc.err, got, tc.conflict)
			}
			if !tc.conflict && got != tc.err {
				t.Fatalf("expected error to pass through, got %v", got)
			}
		})
	}
}

func TestWorkOrderDynamoRepository_Create(t *testing.T) {
	now := time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)
	wo := entities.WorkOrder{ID: "wo1", OwnerID: "owner-1", ClientID: "c1", QuoteID: "q1", Status: entities.WorkOrderStatusScheduled, CreatedAt: now, UpdatedAt: now}

	t.Run("writes work order and quote guard together", func(t *testing.T) {
		ddb := &fakeDynamo{}
		repo := NewWorkOrderDynamoRepository(ddb, "work_orders", "guards")

		if _, err := repo.Create(context.Background(), wo); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(ddb.transactions) != 1 || len(ddb.puts) != 0 {
			t.Fatalf("expected a single transaction, got %d transactions %d puts", len(ddb.transactions), len(ddb.puts))
		}
		items := ddb.transactions[0].TransactItems
		if len(items) != 2 || aws.ToString(items[1].Put.TableName) != "guards" {
			t.Fatalf("unexpected transaction items: %+v", items)
		}
		var g guardItem
		if err := attributevalue.UnmarshalMap(items[1].Put.Item, &g); err != nil {
			t.Fatalf("unmarshal guard: %v", err)
		}
		if g.ID != "work_order_quote#q1" || g.RefID != "wo1" {
			t.Fatalf("unexpected guard: %+v", g)
		}
	})

	t.Run("guard taken", func(t *testing.T) {
		ddb := &fakeDynamo{transactErr: canceledByCondition()}
		repo := NewWorkOrderDynamoRepository(ddb, "work_orders", "guards")

		_, err := repo.Create(context.Background(), wo)
		if !errors.Is(err, interfaces.ErrConflict) {
			t.Fatalf("expected ErrConflict, got %v", err)
		}
	})

	t.Run("without quote uses a plain conditional put", func(t *testing.T) {
		ddb := &fakeDynamo{}
		repo := NewWorkOrderDynamoRepository(ddb, "work_orders", "guards")
		noQuote := wo
		noQuote.QuoteID = ""

		if _, err := repo.Create(context.Background(), noQuote); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(ddb.puts) != 1 || len(ddb.transactions) != 0 {
			t.Fatalf("expected one put")
		}
		if _, ok := ddb.puts[0].Item["quote_id"]; ok {
			t.Fatalf("empty quote_id must not be written to the index key")
		}
	})
}

func TestWorkOrderDynamoRepository_MarkDone(t *testing.T) {
	t.Run("terminal status", func(t *testing.T) {
		ddb := &fakeDynamo{updateErr: &types.ConditionalCheckFailedException{}}
		repo := NewWorkOrderDynamoRepository(ddb, "work_orders", "guards")

		_, err := repo.MarkDone(context.Background(), "wo1", time.Now())
		if !errors.Is(err, interfaces.ErrConflict) {
			t.Fatalf("expected ErrConflict, got %v", err)
		}
		cond := aws.ToString(ddb.updates[0].ConditionExpression)
		if cond != "attribute_exists(#id) AND NOT #status IN (:done, :canceled)" {
			t.Fatalf("unexpected condition %q", cond)
		}
	})

	t.Run("success", func(t *testing.T) {
		end := time.Date(2025, 1, 10, 15, 0, 0, 0, time.UTC)
		av, _ := attributevalue.MarshalMap(workOrderItem{ID: "wo1", Status: "DONE", ExecutionEnd: formatTime(end)})
		ddb := &fakeDynamo{updateOut: av}
		repo := NewWorkOrderDynamoRepository(ddb, "work_orders", "guards")

		wo, err := repo.MarkDone(context.Background(), "wo1", end)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if wo.Status != entities.WorkOrderStatusDone || wo.ExecutionEnd == nil || !wo.ExecutionEnd.Equal(end) {
			t.Fatalf("unexpected work order: %+v", wo)
		}
	})
}

func TestPaymentDynamoRepository_UpdateStatusReleasesGuard(t *testing.T) {
	paid := time.Date(2025, 1, 11, 0, 0, 0, 0, time.UTC)
	stored, _ := attributevalue.MarshalMap(paymentItem{ID: "p1", WorkOrderID: "wo1", Status: "RECEIVED", Value: "1500", PaidAt: formatTime(paid)})
	ddb := &fakeDynamo{getItem: map[string]itemMap{"p1": stored}}
	repo := NewPaymentDynamoRepository(ddb, "payments", "guards")

	p := entities.Payment{ID: "p1", WorkOrderID: "wo1", Status: entities.PaymentStatusPending}
	res, err := repo.UpdateStatus(context.Background(), p, entities.PaymentStatusReceived, &paid)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ddb.transactions) != 1 {
		t.Fatalf("expected a transaction")
	}
	items := ddb.transactions[0].TransactItems
	if items[0].Update == nil || items[1].Delete == nil {
		t.Fatalf("expected update plus guard delete, got %+v", items)
	}
	key := items[1].Delete.Key["id"].(*types.AttributeValueMemberS).Value
	if key != "pending_payment#wo1" {
		t.Fatalf("unexpected guard key %q", key)
	}
	if res.Status != entities.PaymentStatusReceived || !res.Value.Equal(decimal.NewFromInt(1500)) || res.PaidAt == nil {
		t.Fatalf("unexpected payment: %+v", res)
	}
}

func TestPaymentDynamoRepository_CreateWithoutWorkOrder(t *testing.T) {
	ddb := &fakeDynamo{putErr: &types.ConditionalCheckFailedException{}}
	repo := NewPaymentDynamoRepository(ddb, "payments", "guards")

	_, err := repo.Create(context.Background(), entities.Payment{ID: "p1", Status: entities.PaymentStatusPending, Value: decimal.NewFromInt(1)})
	if !errors.Is(err, interfaces.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
	if len(ddb.transactions) != 0 {
		t.Fatalf("payment without work order must not take a guard")
	}
}

func TestEquipmentDynamoRepository_GetByIDsChunksAndRetries(t *testing.T) {
	ids := make([]string, 150)
	for i := range ids {
		ids[i] = fmt.Sprintf("e%03d", i)
	}
	ddb := &fakeDynamo{unprocessed: 10}
	repo := NewEquipmentDynamoRepository(ddb, "equipments")

	got, err := repo.GetByIDs(context.Background(), ids)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 150 {
		t.Fatalf("expected 150 equipments, got %d", len(got))
	}
	// 100 keys (10 unprocessed) + retry of 10 + remaining 50
	if len(ddb.batchCalls) != 3 {
		t.Fatalf("expected 3 batch calls, got %d", len(ddb.batchCalls))
	}
}

func TestQuoteDynamoRepository_ListByClientIDPaginates(t *testing.T) {
	page := func(id string, last bool) *dynamodb.QueryOutput {
		av, _ := attributevalue.MarshalMap(quoteItem{ID: id, ClientID: "c1", Status: "SENT", TotalValue: "10.50"})
		out := &dynamodb.QueryOutput{Items: []itemMap{av}}
		if !last {
			out.LastEvaluatedKey = idKey(id)
		}
		return out
	}
	ddb := &fakeDynamo{queryPages: []*dynamodb.QueryOutput{page("q1", false), page("q2", true)}}
	repo := NewQuoteDynamoRepository(ddb, "quotes")

	quotes, err := repo.ListByClientID(context.Background(), "c1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(quotes) != 2 || quotes[1].ID != "q2" {
		t.Fatalf("unexpected quotes: %+v", quotes)
	}
	if !quotes[0].TotalValue.Equal(decimal.RequireFromString("10.5")) {
		t.Fatalf("unexpected total %s", quotes[0].TotalValue)
	}
	if aws.ToString(ddb.queries[0].IndexName) != "client_id-index" {
		t.Fatalf("expected client_id-index, got %s", aws.ToString(ddb.queries[0].IndexName))
	}
}

func TestChecklistDynamoRepository_HydratesTemplates(t *testing.T) {
	yes := true
	cl, _ := attributevalue.MarshalMap(checklistItem{
		ID: "cl1", WorkOrderID: "wo1", TemplateID: "t1", Title: "Safety",
		Answers: []checklistAnswerItem{{ID: "a1", TemplateItemID: "i1", Value: answerValueItem{Boolean: &yes}}},
	})
	ddb := &fakeDynamo{queryPages: []*dynamodb.QueryOutput{{Items: []itemMap{cl}}}}
	repo := NewChecklistDynamoRepository(ddb, "checklists", "templates")

	got, err := repo.ListByWorkOrderID(context.Background(), "wo1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].Template.ID != "t1" {
		t.Fatalf("expected hydrated template, got %+v", got)
	}
	if len(got[0].Answers) != 1 || !got[0].Answers[0].Value.Set() {
		t.Fatalf("expected typed answer, got %+v", got[0].Answers)
	}
	if _, ok := ddb.batchCalls[0].RequestItems["templates"]; !ok {
		t.Fatalf("expected templates batch get")
	}
}

func TestChecklistDynamoRepository_UnresolvedTemplate(t *testing.T) {
	tests := []struct {
		name       string
		templateID string
	}{
		{name: "template row missing", templateID: "gone"},
		{name: "no template id", templateID: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cl, _ := attributevalue.MarshalMap(checklistItem{ID: "cl1", WorkOrderID: "wo1", TemplateID: tt.templateID, Title: "Safety"})
			ddb := &fakeDynamo{
				queryPages: []*dynamodb.QueryOutput{{Items: []itemMap{cl}}},
				missing:    map[string]bool{"gone": true},
			}
			repo := NewChecklistDynamoRepository(ddb, "checklists", "templates")

			got, err := repo.ListByWorkOrderID(context.Background(), "wo1")
			if !errors.Is(err, interfaces.ErrChecklistTemplateNotFound) {
				t.Fatalf("expected ErrChecklistTemplateNotFound, got %v", err)
			}
			if got != nil {
				t.Fatalf("expected no checklists, got %+v", got)
			}
		})
	}
}
