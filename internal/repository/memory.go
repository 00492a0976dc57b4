package repository

import (
	"fmt"
	"sync"
	"time"

	"fitclub/internal/db"
	"fitclub/internal/entities"
	"fitclub/internal/schedule"
)

// MemoryStore is an in-process implementation of the trainer, client and
// booking stores. It backs the service tests and small single-node setups;
// everything lives behind one mutex, so reads see a consistent snapshot.
type MemoryStore struct {
	mu       sync.Mutex
	trainers map[int]db.Trainer
	clients  map[int]db.Client
	bookings []db.Booking
	nextID   int
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		trainers: map[int]db.Trainer{},
		clients:  map[int]db.Client{},
		nextID:   1,
	}
}

func (m *MemoryStore) PutTrainer(t db.Trainer) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if t.ID == 0 {
		t.ID = m.nextID
		m.nextID++
	}
	m.trainers[t.ID] = t
}

func (m *MemoryStore) PutClient(c db.Client) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if c.ID == 0 {
		c.ID = m.nextID
		m.nextID++
	}
	m.clients[c.ID] = c
}

func (m *MemoryStore) GetTrainerByID(id int) (*db.Trainer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	t, ok := m.trainers[id]
	if !ok {
		return nil, fmt.Errorf("trainer %d: %w", id, ErrNotFound)
	}
	return &t, nil
}

func (m *MemoryStore) ListTrainers(onlyActive bool) ([]db.Trainer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []db.Trainer
	for _, t := range m.trainers {
		if onlyActive && t.Status != schedule.TrainerActive {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

func (m *MemoryStore) CreateTrainer(t *db.Trainer) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	t.ID = m.nextID
	m.nextID++
	t.CreatedAt = time.Now()
	t.UpdatedAt = t.CreatedAt
	m.trainers[t.ID] = *t
	return nil
}

func (m *MemoryStore) UpdateWorkingHours(id int, hours schedule.WorkingHours) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	t, ok := m.trainers[id]
	if !ok {
		return fmt.Errorf("trainer %d: %w", id, ErrNotFound)
	}
	t.Hours = hours
	t.UpdatedAt = time.Now()
	m.trainers[id] = t
	return nil
}

func (m *MemoryStore) UpdateTrainerStatus(id int, status string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	t, ok := m.trainers[id]
	if !ok {
		return fmt.Errorf("trainer %d: %w", id, ErrNotFound)
	}
	t.Status = status
	t.UpdatedAt = time.Now()
	m.trainers[id] = t
	return nil
}

func (m *MemoryStore) CountTrainerBookings(id int) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, b := range m.bookings {
		if b.TrainerID == id {
			n++
		}
	}
	return n, nil
}

func (m *MemoryStore) GetClientByID(id int) (*db.Client, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.clients[id]
	if !ok {
		return nil, fmt.Errorf("client %d: %w", id, ErrNotFound)
	}
	return &c, nil
}

func (m *MemoryStore) AssignTrainer(clientID, trainerID int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.clients[clientID]
	if !ok {
		return fmt.Errorf("client %d: %w", clientID, ErrNotFound)
	}
	c.TrainerID = trainerID
	c.UpdatedAt = time.Now()
	m.clients[clientID] = c
	return nil
}

func (m *MemoryStore) CreateBooking(b *db.Booking) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	b.ID = m.nextID
	m.nextID++
	b.CreatedAt = time.Now()
	b.UpdatedAt = b.CreatedAt
	m.bookings = append(m.bookings, *b)
	return nil
}

func (m *MemoryStore) GetBookingByCode(code string) (*db.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, b := range m.bookings {
		if b.Code == code {
			out := b
			return &out, nil
		}
	}
	return nil, fmt.Errorf("booking %q: %w", code, ErrNotFound)
}

func (m *MemoryStore) ListForTrainerDate(trainerID int, date string) ([]db.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []db.Booking
	for _, b := range m.bookings {
		if b.TrainerID == trainerID && b.Date == date {
			out = append(out, b)
		}
	}
	return out, nil
}

func (m *MemoryStore) ListForTrainerRange(trainerID int, from, to string) ([]db.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []db.Booking
	for _, b := range m.bookings {
		if b.TrainerID == trainerID && b.Date >= from && b.Date <= to {
			out = append(out, b)
		}
	}
	return out, nil
}

func (m *MemoryStore) ListBookings(date, status string, trainerID int) ([]db.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []db.Booking
	for _, b := range m.bookings {
		if date != "" && b.Date != date {
			continue
		}
		if status != "" && b.Status != status {
			continue
		}
		if trainerID != 0 && b.TrainerID != trainerID {
			continue
		}
		out = append(out, b)
	}
	return out, nil
}

func (m *MemoryStore) UpdateBookingStatus(id int, status string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.bookings {
		if m.bookings[i].ID == id {
			m.bookings[i].Status = status
			m.bookings[i].UpdatedAt = time.Now()
			return nil
		}
	}
	return fmt.Errorf("booking %d: %w", id, ErrNotFound)
}

func (m *MemoryStore) UpdatePaymentBySession(sessionID, paymentStatus string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.bookings {
		if m.bookings[i].StripeSession == sessionID {
			m.bookings[i].PaymentStatus = paymentStatus
			m.bookings[i].UpdatedAt = time.Now()
		}
	}
	return nil
}

func (m *MemoryStore) GetBookingResponseByCode(code string) (*entities.BookingResponse, error) {
	b, err := m.GetBookingByCode(code)
	if err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	res := entities.BookingResponse{
		ID: b.ID, Code: b.Code,
		TrainerID: b.TrainerID, ClientID: b.ClientID,
		Date: b.Date, StartTime: b.StartTime, EndTime: b.EndTime,
		Status: b.Status, Type: b.Type, Price: b.Price, Notes: b.Notes,
		CreatedAt: b.CreatedAt, UpdatedAt: b.UpdatedAt,
	}
	if t, ok := m.trainers[b.TrainerID]; ok {
		res.TrainerName = t.Name
	}
	if c, ok := m.clients[b.ClientID]; ok {
		res.ClientName = c.Name
		res.ClientEmail = c.Email
		res.ClientPhone = c.Phone
	}
	return &res, nil
}
