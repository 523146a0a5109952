package booking

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"regexp"
	"strings"
	"time"
)

var (
	ErrNegativeMoney       = errors.New("money cannot be negative")
	ErrCustomerNameMissing = errors.New("customer name is required")
	ErrCustomerPhone       = errors.New("customer phone must be 9-15 digits")
	ErrParticipantName     = errors.New("participant name is required")
	ErrParticipantAge      = errors.New("participant age must be between 1 and 120")
	ErrInvalidNumber       = errors.New("booking number must look like BKyyyymmddNNNN")
)

// Money is an amount in minor currency units (satang).
type Money struct {
	minor int64
}

func NewMoney(minor int64) (Money, error) {
	if minor < 0 {
		return Money{}, ErrNegativeMoney
	}
	return Money{minor: minor}, nil
}

func MustMoney(minor int64) Money {
	m, err := NewMoney(minor)
	if err != nil {
		panic(err)
	}
	return m
}

func (m Money) Minor() int64 {
	return m.minor
}

// Major renders the amount in whole currency units for the wire.
func (m Money) Major() float64 {
	return float64(m.minor) / 100.0
}

func (m Money) Add(other Money) Money {
	return Money{minor: m.minor + other.minor}
}

func (m Money) IsZero() bool {
	return m.minor == 0
}

var phoneDigits = regexp.MustCompile(`^\+?[0-9]{9,15}$`)

type Customer struct {
	name  string
	phone string
	email string
}

func NewCustomer(name, phone, email string) (Customer, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Customer{}, ErrCustomerNameMissing
	}
	phone = normalizePhone(phone)
	if !phoneDigits.MatchString(phone) {
		return Customer{}, ErrCustomerPhone
	}
	return Customer{name: name, phone: phone, email: strings.TrimSpace(email)}, nil
}

// RehydrateCustomer rebuilds a stored customer without re-validating it.
func RehydrateCustomer(name, phone, email string) Customer {
	return Customer{name: name, phone: phone, email: email}
}

func (c Customer) Name() string  { return c.name }
func (c Customer) Phone() string { return c.phone }
func (c Customer) Email() string { return c.email }

type Participant struct {
	name      string
	phone     string
	sportType string
	age       *int
	isBooker  bool
}

func NewParticipant(name, phone, sportType string, age *int, isBooker bool) (Participant, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Participant{}, ErrParticipantName
	}
	if age != nil && (*age < 1 || *age > 120) {
		return Participant{}, ErrParticipantAge
	}
	return Participant{
		name:      name,
		phone:     normalizePhone(phone),
		sportType: strings.TrimSpace(sportType),
		age:       age,
		isBooker:  isBooker,
	}, nil
}

func RehydrateParticipant(name, phone, sportType string, age *int, isBooker bool) Participant {
	return Participant{name: name, phone: phone, sportType: sportType, age: age, isBooker: isBooker}
}

func (p Participant) Name() string      { return p.name }
func (p Participant) Phone() string     { return p.phone }
func (p Participant) SportType() string { return p.sportType }
func (p Participant) Age() *int         { return p.age }
func (p Participant) IsBooker() bool    { return p.isBooker }

func normalizePhone(s string) string {
	s = strings.TrimSpace(s)
	return strings.NewReplacer(" ", "", "-", "").Replace(s)
}

var numberPattern = regexp.MustCompile(`^BK[0-9]{8}[0-9]{4}$`)

// Number is the human-facing booking reference, BK + yyyymmdd + 4 digits.
type Number struct {
	value string
}

func GenerateNumber(now time.Time) (Number, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(10000))
	if err != nil {
		return Number{}, fmt.Errorf("generate booking number: %w", err)
	}
	return Number{value: fmt.Sprintf("BK%s%04d", now.Format("20060102"), n.Int64())}, nil
}

func ParseNumber(s string) (Number, error) {
	if !numberPattern.MatchString(s) {
		return Number{}, ErrInvalidNumber
	}
	return Number{value: s}, nil
}

func (n Number) String() string {
	return n.value
}
