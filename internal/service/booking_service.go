package service

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"fitclub/internal/cache"
	"fitclub/internal/db"
	"fitclub/internal/entities"
	"fitclub/internal/repository"
	"fitclub/internal/schedule"
)

const (
	paymentPending   = "pending"
	paymentSucceeded = "succeeded"
	paymentRefunded  = "refunded"
)

type BookingService struct {
	bookings BookingStore
	trainers TrainerStore
	clients  ClientStore
	payments *PaymentService // nil when payments are not configured
	sender   *SenderService  // nil in tests
	cache    *cache.ScheduleCache
	log      *zap.Logger
	now      func() time.Time

	// Conflict-check-and-insert must be one atomic unit per trainer/day,
	// otherwise two concurrent requests can both pass validation and
	// double-book. Slot reads stay lock-free; they only need a consistent
	// snapshot.
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewBookingService(bookings BookingStore, trainers TrainerStore, clients ClientStore,
	payments *PaymentService, sender *SenderService, scheduleCache *cache.ScheduleCache, log *zap.Logger) *BookingService {
	return &BookingService{
		bookings: bookings,
		trainers: trainers,
		clients:  clients,
		payments: payments,
		sender:   sender,
		cache:    scheduleCache,
		log:      log,
		now:      time.Now,
		locks:    map[string]*sync.Mutex{},
	}
}

func (s *BookingService) dayLock(trainerID int, date string) *sync.Mutex {
	key := fmt.Sprintf("%d|%s", trainerID, date)
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locks[key]
	if !ok {
		l = &sync.Mutex{}
		s.locks[key] = l
	}
	return l
}

// engineTrainer builds the engine's view of a trainer. Malformed stored
// hours degrade to the default schedule; the warnings are logged and handed
// back so callers can surface them.
func (s *BookingService) engineTrainer(t *db.Trainer) (schedule.Trainer, []string) {
	hours, warnings := s.trainerHours(t)
	return schedule.Trainer{
		ID:         t.ID,
		Status:     t.Status,
		HourlyRate: t.HourlyRate,
		Hours:      hours,
	}, warnings
}

func (s *BookingService) trainerHours(t *db.Trainer) (schedule.WorkingHours, []string) {
	if hours, ok := s.cache.Get(t.ID); ok {
		return hours, nil
	}
	hours, warnings := schedule.NormalizeWorkingHours(t.Hours)
	for _, w := range warnings {
		s.log.Warn("working hours degraded to default",
			zap.Int("trainer_id", t.ID), zap.String("problem", w))
	}
	if len(warnings) == 0 {
		s.cache.Set(t.ID, hours)
	}
	return hours, warnings
}

func toEngineBooking(b db.Booking) schedule.Booking {
	return schedule.Booking{
		ID:        b.ID,
		Code:      b.Code,
		TrainerID: b.TrainerID,
		ClientID:  b.ClientID,
		Date:      b.Date,
		StartTime: b.StartTime,
		EndTime:   b.EndTime,
		Status:    b.Status,
		Type:      b.Type,
		Price:     b.Price,
		Notes:     b.Notes,
	}
}

func toEngineBookings(rows []db.Booking) []schedule.Booking {
	out := make([]schedule.Booking, 0, len(rows))
	for _, b := range rows {
		out = append(out, toEngineBooking(b))
	}
	return out
}

// GetAvailableSlots regenerates the day's slot grid from the current trainer
// and booking state. Both available and taken slots come back, priced, in
// ascending order.
func (s *BookingService) GetAvailableSlots(trainerID int, date string, durationMin, stepMin int) (*entities.SlotsResponse, error) {
	day, err := time.ParseInLocation("2006-01-02", date, time.Local)
	if err != nil {
		return nil, fmt.Errorf("%w: date %q is not YYYY-MM-DD", schedule.ErrFormat, date)
	}
	trainer, err := s.trainers.GetTrainerByID(trainerID)
	if err != nil {
		return nil, err
	}
	engine, warnings := s.engineTrainer(trainer)

	rows, err := s.bookings.ListForTrainerDate(trainerID, date)
	if err != nil {
		return nil, fmt.Errorf("error loading bookings for slots: %w", err)
	}

	if stepMin <= 0 {
		stepMin = schedule.DefaultStepMinutes
	}
	daySchedule := engine.Hours.For(day)
	slots, err := schedule.GenerateSlots(engine, daySchedule, toEngineBookings(rows), durationMin, stepMin)
	if err != nil {
		return nil, err
	}
	return &entities.SlotsResponse{
		TrainerID:       trainerID,
		Date:            date,
		DurationMinutes: durationMin,
		StepMinutes:     stepMin,
		Working:         daySchedule.IsWorking && engine.Status == schedule.TrainerActive,
		Slots:           slots,
		Warnings:        warnings,
	}, nil
}

// CreateBooking validates the request, and on success inserts the booking and
// kicks off payment and notifications. Validation errors come back as a list
// so the caller can show every problem at once; only infrastructure failures
// use the error return.
func (s *BookingService) CreateBooking(req schedule.BookingRequest, payOnline bool) (*entities.BookingResponse, []schedule.ValidationError, error) {
	look := schedule.Lookups{Today: s.now()}

	trainer, err := s.trainers.GetTrainerByID(req.TrainerID)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, nil, err
	}
	var clientTrainerID int
	client, err := s.clients.GetClientByID(req.ClientID)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, nil, err
	}
	if client != nil {
		look.ClientExists = true
		clientTrainerID = client.TrainerID
		look.ClientTrainerID = clientTrainerID
	}

	// Direct creation always enters scheduled; seeding terminal statuses is
	// the bulk import's privilege.
	req.Status = ""

	release := func() {}
	if trainer != nil {
		engine, _ := s.engineTrainer(trainer)
		look.Trainer = &engine

		if req.Date != "" {
			lock := s.dayLock(req.TrainerID, req.Date)
			lock.Lock()
			release = lock.Unlock

			rows, err := s.bookings.ListForTrainerDate(req.TrainerID, req.Date)
			if err != nil {
				release()
				return nil, nil, fmt.Errorf("error loading bookings for validation: %w", err)
			}
			look.Existing = toEngineBookings(rows)
		}
	}
	defer func() { release() }()

	validated, verrs := schedule.ValidateBooking(req, look)
	if len(verrs) > 0 {
		return nil, verrs, nil
	}

	row := &db.Booking{
		Code:      uuid.NewString(),
		TrainerID: validated.TrainerID,
		ClientID:  validated.ClientID,
		Date:      validated.Date,
		StartTime: validated.StartTime,
		EndTime:   validated.EndTime,
		Status:    validated.Status,
		Type:      validated.Type,
		Price:     validated.Price,
		Notes:     validated.Notes,
	}

	var checkoutURL string
	if payOnline && s.payments != nil {
		description := fmt.Sprintf("FitClub %s session %s %s-%s", row.Type, row.Date, row.StartTime, row.EndTime)
		url, sessionID, err := s.payments.CreateCheckoutSession(int64(row.Price*100), "eur", description, client.Email)
		if err != nil {
			return nil, nil, fmt.Errorf("error creating checkout session: %w", err)
		}
		row.StripeSession = sessionID
		row.PaymentStatus = paymentPending
		checkoutURL = url
	}

	if err := s.bookings.CreateBooking(row); err != nil {
		s.log.Error("error creating booking", zap.Error(err))
		return nil, nil, err
	}
	release()
	release = func() {}

	if req.Reassign && clientTrainerID != row.TrainerID {
		if err := s.clients.AssignTrainer(row.ClientID, row.TrainerID); err != nil {
			s.log.Warn("booking created but trainer reassignment failed",
				zap.String("code", row.Code), zap.Error(err))
		}
	}

	res, err := s.bookings.GetBookingResponseByCode(row.Code)
	if err != nil {
		return nil, nil, err
	}
	res.CheckoutURL = checkoutURL

	if s.sender != nil {
		s.sender.SendBookingEmail(*res, schedule.StatusScheduled)
		s.sender.SendBookingSMS(*res, schedule.StatusScheduled)
	}
	return res, nil, nil
}

func (s *BookingService) GetBooking(code string) (*entities.BookingResponse, error) {
	return s.bookings.GetBookingResponseByCode(code)
}

// ListTrainerBookings returns the trainer's bookings over [from, to], used
// for conflict and calendar views.
func (s *BookingService) ListTrainerBookings(trainerID int, from, to string) ([]schedule.Booking, error) {
	for _, d := range []string{from, to} {
		if _, err := time.ParseInLocation("2006-01-02", d, time.Local); err != nil {
			return nil, fmt.Errorf("%w: date %q is not YYYY-MM-DD", schedule.ErrFormat, d)
		}
	}
	if _, err := s.trainers.GetTrainerByID(trainerID); err != nil {
		return nil, err
	}
	rows, err := s.bookings.ListForTrainerRange(trainerID, from, to)
	if err != nil {
		return nil, err
	}
	return toEngineBookings(rows), nil
}

func (s *BookingService) ListBookings(date, status string, trainerID int) ([]schedule.Booking, error) {
	rows, err := s.bookings.ListBookings(date, status, trainerID)
	if err != nil {
		return nil, err
	}
	return toEngineBookings(rows), nil
}

// UpdateBookingStatus applies one state-machine step. Terminal states are
// final; anything else is ErrInvalidTransition.
func (s *BookingService) UpdateBookingStatus(code, newStatus string) (*entities.BookingResponse, error) {
	if !schedule.ValidStatus(newStatus) {
		return nil, fmt.Errorf("%w: unknown status %q", schedule.ErrInvalidTransition, newStatus)
	}
	booking, err := s.bookings.GetBookingByCode(code)
	if err != nil {
		return nil, err
	}
	if !schedule.CanTransition(booking.Status, newStatus) {
		return nil, fmt.Errorf("%w: %s -> %s", schedule.ErrInvalidTransition, booking.Status, newStatus)
	}
	if err := s.bookings.UpdateBookingStatus(booking.ID, newStatus); err != nil {
		return nil, err
	}

	if newStatus == schedule.StatusCancelled && booking.StripeSession != "" && s.payments != nil {
		if err := s.payments.RefundPaymentBySessionID(booking.StripeSession); err != nil {
			s.log.Warn("booking cancelled but refund failed",
				zap.String("code", code), zap.Error(err))
		} else if err := s.bookings.UpdatePaymentBySession(booking.StripeSession, paymentRefunded); err != nil {
			s.log.Warn("refund succeeded but payment status update failed",
				zap.String("code", code), zap.Error(err))
		}
	}

	res, err := s.bookings.GetBookingResponseByCode(code)
	if err != nil {
		return nil, err
	}
	if s.sender != nil && (newStatus == schedule.StatusCancelled || newStatus == schedule.StatusNoShow) {
		s.sender.SendBookingEmail(*res, newStatus)
		s.sender.SendBookingSMS(*res, newStatus)
	}
	return res, nil
}

// CancelBooking is the client-facing cancellation: same state machine step,
// refund included.
func (s *BookingService) CancelBooking(code string) (*entities.BookingResponse, error) {
	return s.UpdateBookingStatus(code, schedule.StatusCancelled)
}

// ConfirmPayment records a completed checkout session, reported by the
// Stripe webhook.
func (s *BookingService) ConfirmPayment(sessionID string) error {
	return s.bookings.UpdatePaymentBySession(sessionID, paymentSucceeded)
}
