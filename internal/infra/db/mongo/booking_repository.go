package mongo

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	domainbooking "chaletbay/internal/domain/booking"
	domainledger "chaletbay/internal/domain/ledger"
	"chaletbay/internal/domain/shared/money"
)

var ErrConcurrentUpdate = errors.New("mongo: concurrent update detected")

type BookingRepository struct {
	col *mongo.Collection
}

func NewBookingRepository(db *mongo.Database) *BookingRepository {
	return &BookingRepository{col: db.Collection("bookings")}
}

func (r *BookingRepository) ByID(ctx context.Context, id domainbooking.BookingID) (*domainbooking.Booking, error) {
	var doc bookingDocument
	if err := r.col.FindOne(ctx, bson.M{"_id": string(id)}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domainbooking.ErrBookingNotFound
		}
		return nil, err
	}
	return doc.toAggregate(), nil
}

func (r *BookingRepository) List(ctx context.Context) ([]*domainbooking.Booking, error) {
	opts := options.Find().SetSort(bson.D{{Key: "start_date", Value: 1}, {Key: "created_at", Value: 1}})
	cursor, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var out []*domainbooking.Booking
	for cursor.Next(ctx) {
		var doc bookingDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		out = append(out, doc.toAggregate())
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *BookingRepository) Save(ctx context.Context, b *domainbooking.Booking) error {
	doc := newBookingDocument(b)
	filter := bson.M{"_id": doc.ID, "version": b.Version}
	doc.Version = b.Version + 1
	update := bson.M{"$set": doc}
	opts := options.Update().SetUpsert(true)
	res, err := r.col.UpdateOne(ctx, filter, update, opts)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrConcurrentUpdate
		}
		return err
	}
	if res.MatchedCount == 0 && res.UpsertedCount == 0 {
		return ErrConcurrentUpdate
	}
	b.Version = doc.Version
	return nil
}

func (r *BookingRepository) Delete(ctx context.Context, id domainbooking.BookingID) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": string(id)})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domainbooking.ErrBookingNotFound
	}
	return nil
}

type guestDocument struct {
	Name       string `bson:"name"`
	DocumentID string `bson:"document_id"`
}

type paymentDocument struct {
	ID     string `bson:"id"`
	Amount int64  `bson:"amount"`
	Method string `bson:"method"`
	Date   int64  `bson:"date"`
}

// bookingDocument is the persisted shape. The legacy_deposit and
// legacy_payment_method fields are only ever read: old records written before
// the payments sequence existed carry the deposit there, and decoding folds
// them into a synthetic payment.
type bookingDocument struct {
	ID                   string            `bson:"_id"`
	Kind                 string            `bson:"kind"`
	StartDate            int64             `bson:"start_date"`
	EndDate              int64             `bson:"end_date"`
	Adults               int               `bson:"adults"`
	Children             int               `bson:"children"`
	Guests               []guestDocument   `bson:"guests"`
	TotalPrice           int64             `bson:"total_price"`
	Discount             int64             `bson:"discount"`
	Payments             []paymentDocument `bson:"payments"`
	CleaningFeeTotal     int64             `bson:"cleaning_fee_total"`
	CleaningFeeCollected int64             `bson:"cleaning_fee_collected"`
	LegacyDeposit        int64             `bson:"legacy_deposit,omitempty"`
	LegacyPaymentMethod  string            `bson:"legacy_payment_method,omitempty"`
	Schedule             string            `bson:"schedule,omitempty"`
	ForcedHoliday        bool              `bson:"forced_holiday"`
	CreatedAt            int64             `bson:"created_at"`
	UpdatedAt            int64             `bson:"updated_at"`
	Version              int64             `bson:"version"`
}

func newBookingDocument(b *domainbooking.Booking) bookingDocument {
	guests := make([]guestDocument, 0, len(b.Guests))
	for _, g := range b.Guests {
		guests = append(guests, guestDocument{Name: g.Name, DocumentID: g.DocumentID})
	}
	payments := make([]paymentDocument, 0, len(b.Ledger.Payments))
	for _, p := range b.Ledger.Payments {
		payments = append(payments, paymentDocument{
			ID:     p.ID,
			Amount: int64(p.Amount),
			Method: string(p.Method),
			Date:   p.Date.UnixMilli(),
		})
	}
	return bookingDocument{
		ID:                   string(b.ID),
		Kind:                 string(b.Kind),
		StartDate:            b.StartDate.UnixMilli(),
		EndDate:              b.EndDate.UnixMilli(),
		Adults:               b.Adults,
		Children:             b.Children,
		Guests:               guests,
		TotalPrice:           int64(b.TotalPrice),
		Discount:             int64(b.Ledger.Discount),
		Payments:             payments,
		CleaningFeeTotal:     int64(b.Ledger.CleaningFeeTotal),
		CleaningFeeCollected: int64(b.Ledger.CleaningFeeCollected),
		Schedule:             b.Schedule,
		ForcedHoliday:        b.ForcedHoliday,
		CreatedAt:            b.CreatedAt.UnixMilli(),
		UpdatedAt:            b.UpdatedAt.UnixMilli(),
		Version:              b.Version,
	}
}

func (d bookingDocument) toAggregate() *domainbooking.Booking {
	guests := make([]domainbooking.Guest, 0, len(d.Guests))
	for _, g := range d.Guests {
		guests = append(guests, domainbooking.Guest{Name: g.Name, DocumentID: g.DocumentID})
	}
	led := domainledger.Ledger{
		Discount:             money.Amount(d.Discount),
		CleaningFeeTotal:     money.Amount(d.CleaningFeeTotal),
		CleaningFeeCollected: money.Amount(d.CleaningFeeCollected),
	}
	for _, p := range d.Payments {
		led.Payments = append(led.Payments, domainledger.Payment{
			ID:     p.ID,
			Amount: money.Amount(p.Amount),
			Method: domainledger.Method(p.Method),
			Date:   timestampToTime(p.Date),
		})
	}
	start := timestampToTime(d.StartDate)
	led.NormalizeLegacy(money.Amount(d.LegacyDeposit), domainledger.Method(d.LegacyPaymentMethod), start, uuid.NewString())

	return &domainbooking.Booking{
		ID:            domainbooking.BookingID(d.ID),
		Kind:          domainbooking.Kind(d.Kind),
		StartDate:     start,
		EndDate:       timestampToTime(d.EndDate),
		Adults:        d.Adults,
		Children:      d.Children,
		Guests:        guests,
		TotalPrice:    money.Amount(d.TotalPrice),
		Ledger:        led,
		Schedule:      d.Schedule,
		ForcedHoliday: d.ForcedHoliday,
		CreatedAt:     timestampToTime(d.CreatedAt),
		UpdatedAt:     timestampToTime(d.UpdatedAt),
		Version:       d.Version,
	}
}

func timestampToTime(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}

var _ domainbooking.Repository = (*BookingRepository)(nil)
