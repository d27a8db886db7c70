package repository

import (
	"context"
	"fmt"

	"takaful_quote/internal/domain/entities"
	"takaful_quote/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultQuotesTableName = "quote_requests"
	quotesReferenceIndex   = "quote_reference-index"
	quotesCustomerCPRIndex = "customer_cpr-index"
)

type quoteItem struct {
	ID             string `dynamodbav:"id"`
	QuoteReference string `dynamodbav:"quote_reference,omitempty"`
	Status         string `dynamodbav:"status"`
	InsuranceType  string `dynamodbav:"insurance_type"`
	// Denormalised for the customer_cpr-index GSI; empty values are omitted
	// because DynamoDB rejects empty GSI keys.
	CustomerCPR string `dynamodbav:"customer_cpr,omitempty"`

	Customer       customerItem   `dynamodbav:"customer"`
	Vehicle        *vehicleItem   `dynamodbav:"vehicle,omitempty"`
	TravelCriteria *travelItem    `dynamodbav:"travel_criteria,omitempty"`
	Discount       *discountItem  `dynamodbav:"discount,omitempty"`
	Exception      *exceptionItem `dynamodbav:"exception,omitempty"`

	SelectedPlanID       string `dynamodbav:"selected_plan_id,omitempty"`
	PaymentMethod        string `dynamodbav:"payment_method,omitempty"`
	ContactNumberForLink string `dynamodbav:"contact_number_for_link,omitempty"`
	LinkMode             string `dynamodbav:"link_mode,omitempty"`

	AgentID   string `dynamodbav:"agent_id,omitempty"`
	AgentName string `dynamodbav:"agent_name,omitempty"`
	Source    string `dynamodbav:"source,omitempty"`
	CreatedAt string `dynamodbav:"created_at"`
}

type customerItem struct {
	CPR                       string   `dynamodbav:"cpr,omitempty"`
	FullName                  string   `dynamodbav:"full_name,omitempty"`
	Mobile                    string   `dynamodbav:"mobile,omitempty"`
	Email                     string   `dynamodbav:"email,omitempty"`
	Type                      string   `dynamodbav:"type,omitempty"`
	ZainPlan                  string   `dynamodbav:"zain_plan,omitempty"`
	IsEligibleForZain         bool     `dynamodbav:"is_eligible_for_zain"`
	IsEligibleForInstallments bool     `dynamodbav:"is_eligible_for_installments"`
	CreditScore               int      `dynamodbav:"credit_score,omitempty"`
	ActiveLines               []string `dynamodbav:"active_lines,omitempty"`
}

type vehicleItem struct {
	PlateNumber       string  `dynamodbav:"plate_number"`
	Make              string  `dynamodbav:"make,omitempty"`
	Model             string  `dynamodbav:"model,omitempty"`
	Year              int     `dynamodbav:"year,omitempty"`
	ChassisNumber     string  `dynamodbav:"chassis_number,omitempty"`
	BodyType          string  `dynamodbav:"body_type,omitempty"`
	EngineSize        string  `dynamodbav:"engine_size,omitempty"`
	RegistrationMonth string  `dynamodbav:"registration_month,omitempty"`
	Value             float64 `dynamodbav:"value,omitempty"`
	PolicyStartDate   string  `dynamodbav:"policy_start_date,omitempty"`
	PolicyEndDate     string  `dynamodbav:"policy_end_date,omitempty"`
	AgencyRepair      bool    `dynamodbav:"agency_repair"`
	HasPriorClaims    bool    `dynamodbav:"has_prior_claims"`
}

type travelItem struct {
	Destination   string `dynamodbav:"destination"`
	TravelType    string `dynamodbav:"travel_type,omitempty"`
	DepartureDate string `dynamodbav:"departure_date,omitempty"`
	ReturnDate    string `dynamodbav:"return_date,omitempty"`
	Adults        int    `dynamodbav:"adults"`
	Children      int    `dynamodbav:"children"`
	Seniors       int    `dynamodbav:"seniors"`
	DateOfBirth   string `dynamodbav:"date_of_birth,omitempty"`
}

type discountItem struct {
	Code       string  `dynamodbav:"code"`
	Percent    float64 `dynamodbav:"percent"`
	OwnerLabel string  `dynamodbav:"owner_label,omitempty"`
}

type exceptionItem struct {
	TicketID     string `dynamodbav:"ticket_id"`
	PlanID       string `dynamodbav:"plan_id"`
	PlanProvider string `dynamodbav:"plan_provider,omitempty"`
	PlanName     string `dynamodbav:"plan_name,omitempty"`
	RequestedAt  string `dynamodbav:"requested_at"`
	DecidedAt    string `dynamodbav:"decided_at,omitempty"`
	Reason       string `dynamodbav:"reason,omitempty"`
}

// QuoteDynamoRepository persists QuoteRequest aggregates in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: quote_reference-index (PK: quote_reference)
//   - GSI: customer_cpr-index (PK: customer_cpr)
type QuoteDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
}

var _ interfaces.IQuoteRepository = (*QuoteDynamoRepository)(nil)

func NewQuoteDynamoRepository(ddb dynamoAPI, tableName string) *QuoteDynamoRepository {
	return &QuoteDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, defaultQuotesTableName),
	}
}

// Save writes the whole document. The reference is immutable once stored.
func (r *QuoteDynamoRepository) Save(ctx context.Context, q entities.QuoteRequest) error {
	av, err := attributevalue.MarshalMap(toQuoteItem(q))
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id) OR attribute_not_exists(#ref) OR #ref = :ref"),
		ExpressionAttributeNames: map[string]string{
			"#id":  "id",
			"#ref": "quote_reference",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":ref": &types.AttributeValueMemberS{Value: q.QuoteReference},
		},
	})
	if err != nil {
		return fmt.Errorf("put quote %s: %w", q.ID, err)
	}
	return nil
}

func (r *QuoteDynamoRepository) GetByID(ctx context.Context, id string) (entities.QuoteRequest, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.QuoteRequest{}, err
	}
	if len(out.Item) == 0 {
		return entities.QuoteRequest{}, nil
	}

	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.QuoteRequest{}, err
	}
	return fromQuoteItem(it), nil
}

func (r *QuoteDynamoRepository) GetByReference(ctx context.Context, reference string) (entities.QuoteRequest, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(quotesReferenceIndex),
		KeyConditionExpression: aws.String("quote_reference = :ref"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":ref": &types.AttributeValueMemberS{Value: reference},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.QuoteRequest{}, err
	}
	if len(out.Items) == 0 {
		return entities.QuoteRequest{}, nil
	}

	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.QuoteRequest{}, err
	}
	return fromQuoteItem(it), nil
}

func (r *QuoteDynamoRepository) FindLatestDraftByCPR(ctx context.Context, cpr, excludeID string) (entities.QuoteRequest, error) {
	var (
		latest    quoteItem
		startKey  map[string]types.AttributeValue
		foundOnce bool
	)
	for {
		out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(r.tableName),
			IndexName:              aws.String(quotesCustomerCPRIndex),
			KeyConditionExpression: aws.String("customer_cpr = :cpr"),
			FilterExpression:       aws.String("#status = :draft AND (attribute_exists(vehicle) OR attribute_exists(travel_criteria))"),
			ExpressionAttributeNames: map[string]string{
				"#status": "status",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":cpr":   &types.AttributeValueMemberS{Value: cpr},
				":draft": &types.AttributeValueMemberS{Value: string(entities.QuoteStatusDraft)},
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return entities.QuoteRequest{}, err
		}

		for _, raw := range out.Items {
			var it quoteItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return entities.QuoteRequest{}, err
			}
			if it.ID == excludeID || (it.Vehicle == nil && it.TravelCriteria == nil) {
				continue
			}
			// RFC3339Nano in UTC sorts lexically.
			if !foundOnce || it.CreatedAt > latest.CreatedAt {
				latest = it
				foundOnce = true
			}
		}

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}

	if !foundOnce {
		return entities.QuoteRequest{}, nil
	}
	return fromQuoteItem(latest), nil
}

func toQuoteItem(q entities.QuoteRequest) quoteItem {
	it := quoteItem{
		ID:             q.ID,
		QuoteReference: q.QuoteReference,
		Status:         string(q.Status),
		InsuranceType:  string(q.InsuranceType),
		CustomerCPR:    q.Customer.CPR,
		Customer: customerItem{
			CPR:                       q.Customer.CPR,
			FullName:                  q.Customer.FullName,
			Mobile:                    q.Customer.Mobile,
			Email:                     q.Customer.Email,
			Type:                      string(q.Customer.Type),
			ZainPlan:                  q.Customer.ZainPlan,
			IsEligibleForZain:         q.Customer.IsEligibleForZain,
			IsEligibleForInstallments: q.Customer.IsEligibleForInstallments,
			CreditScore:               q.Customer.CreditScore,
			ActiveLines:               q.Customer.ActiveLines,
		},
		SelectedPlanID:       q.SelectedPlanID,
		PaymentMethod:        string(q.PaymentMethod),
		ContactNumberForLink: q.ContactNumberForLink,
		LinkMode:             string(q.LinkMode),
		AgentID:              q.AgentID,
		AgentName:            q.AgentName,
		Source:               q.Source,
		CreatedAt:            formatTime(q.CreatedAt),
	}
	if v := q.Vehicle; v != nil {
		it.Vehicle = &vehicleItem{
			PlateNumber:       v.PlateNumber,
			Make:              v.Make,
			Model:             v.Model,
			Year:              v.Year,
			ChassisNumber:     v.ChassisNumber,
			BodyType:          v.BodyType,
			EngineSize:        v.EngineSize,
			RegistrationMonth: v.RegistrationMonth,
			Value:             v.Value,
			PolicyStartDate:   v.PolicyStartDate,
			PolicyEndDate:     v.PolicyEndDate,
			AgencyRepair:      v.AgencyRepair,
			HasPriorClaims:    v.HasPriorClaims,
		}
	}
	if tc := q.TravelCriteria; tc != nil {
		it.TravelCriteria = &travelItem{
			Destination:   tc.Destination,
			TravelType:    string(tc.TravelType),
			DepartureDate: tc.DepartureDate,
			ReturnDate:    tc.ReturnDate,
			Adults:        tc.Adults,
			Children:      tc.Children,
			Seniors:       tc.Seniors,
			DateOfBirth:   tc.DateOfBirth,
		}
	}
	if d := q.Discount; d != nil {
		it.Discount = &discountItem{Code: d.Code, Percent: d.Percent, OwnerLabel: d.OwnerLabel}
	}
	if e := q.Exception; e != nil {
		ex := &exceptionItem{
			TicketID:     e.TicketID,
			PlanID:       e.PlanID,
			PlanProvider: e.PlanProvider,
			PlanName:     e.PlanName,
			RequestedAt:  formatTime(e.RequestedAt),
			Reason:       e.Reason,
		}
		if e.DecidedAt != nil {
			ex.DecidedAt = formatTime(*e.DecidedAt)
		}
		it.Exception = ex
	}
	return it
}

func fromQuoteItem(it quoteItem) entities.QuoteRequest {
	q := entities.QuoteRequest{
		ID:             it.ID,
		QuoteReference: it.QuoteReference,
		Status:         entities.QuoteStatus(it.Status),
		InsuranceType:  entities.InsuranceType(it.InsuranceType),
		Customer: entities.Customer{
			CPR:                       it.Customer.CPR,
			FullName:                  it.Customer.FullName,
			Mobile:                    it.Customer.Mobile,
			Email:                     it.Customer.Email,
			Type:                      entities.CustomerType(it.Customer.Type),
			ZainPlan:                  it.Customer.ZainPlan,
			IsEligibleForZain:         it.Customer.IsEligibleForZain,
			IsEligibleForInstallments: it.Customer.IsEligibleForInstallments,
			CreditScore:               it.Customer.CreditScore,
			ActiveLines:               it.Customer.ActiveLines,
		},
		SelectedPlanID:       it.SelectedPlanID,
		PaymentMethod:        entities.PaymentMethod(it.PaymentMethod),
		ContactNumberForLink: it.ContactNumberForLink,
		LinkMode:             entities.LinkMode(it.LinkMode),
		AgentID:              it.AgentID,
		AgentName:            it.AgentName,
		Source:               it.Source,
		CreatedAt:            parseTime(it.CreatedAt),
	}
	if v := it.Vehicle; v != nil {
		q.Vehicle = &entities.Vehicle{
			PlateNumber:       v.PlateNumber,
			Make:              v.Make,
			Model:             v.Model,
			Year:              v.Year,
			ChassisNumber:     v.ChassisNumber,
			BodyType:          v.BodyType,
			EngineSize:        v.EngineSize,
			RegistrationMonth: v.RegistrationMonth,
			Value:             v.Value,
			PolicyStartDate:   v.PolicyStartDate,
			PolicyEndDate:     v.PolicyEndDate,
			AgencyRepair:      v.AgencyRepair,
			HasPriorClaims:    v.HasPriorClaims,
		}
	}
	if tc := it.TravelCriteria; tc != nil {
		q.TravelCriteria = &entities.TravelCriteria{
			Destination:   tc.Destination,
			TravelType:    entities.TravelType(tc.TravelType),
			DepartureDate: tc.DepartureDate,
			ReturnDate:    tc.ReturnDate,
			Adults:        tc.Adults,
			Children:      tc.Children,
			Seniors:       tc.Seniors,
			DateOfBirth:   tc.DateOfBirth,
		}
	}
	if d := it.Discount; d != nil {
		q.Discount = &entities.AppliedDiscount{Code: d.Code, Percent: d.Percent, OwnerLabel: d.OwnerLabel}
	}
	if e := it.Exception; e != nil {
		ex := &entities.ExceptionRequest{
			TicketID:     e.TicketID,
			PlanID:       e.PlanID,
			PlanProvider: e.PlanProvider,
			PlanName:     e.PlanName,
			RequestedAt:  parseTime(e.RequestedAt),
			Reason:       e.Reason,
		}
		if e.DecidedAt != "" {
			at := parseTime(e.DecidedAt)
			ex.DecidedAt = &at
		}
		q.Exception = ex
	}
	return q
}
