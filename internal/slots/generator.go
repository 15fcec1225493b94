package slots

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"parkease/internal/entities"
)

// MaxDisplaySlots caps how many slots a layout exposes. Larger areas only
// ever show a sample grid; this is a display-density policy, not capacity.
const MaxDisplaySlots = 30

const slotsPerRow = 5

// Config holds the presentation heuristics for a generated layout. The
// defaults produce a plausible-looking mixed grid; none of these encode a
// business rule.
type Config struct {
	// BookedThreshold is the uniform-draw cutoff above which a slot books
	// while the booked target has not been reached.
	BookedThreshold float64
	// CarThreshold is the first-draw cutoff above which a slot takes the
	// car type; below it a second draw splits the remainder between suv
	// and bike.
	CarThreshold float64
}

func DefaultConfig() Config {
	return Config{
		BookedThreshold: 0.4,
		CarThreshold:    0.3,
	}
}

// Generator produces slot layouts from an injectable random source so tests
// can pin the booked assignment deterministically.
type Generator struct {
	cfg Config

	mu  sync.Mutex
	rnd *rand.Rand
}

// NewGenerator returns a generator over the given source. A nil rnd falls
// back to a time-seeded system source.
func NewGenerator(cfg Config, rnd *rand.Rand) *Generator {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Generator{cfg: cfg, rnd: rnd}
}

// Generate derives a labeled slot grid for an area with the given capacity.
// At most min(total, 30) slots come back, in row-major generation order, and
// the number of booked slots never exceeds max(total-available, 0). A caller
// passing available > total gets a fully available grid rather than an error.
func (g *Generator) Generate(total, available int) []entities.Slot {
	count := total
	if count > MaxDisplaySlots {
		count = MaxDisplaySlots
	}
	if count < 0 {
		count = 0
	}

	bookedTarget := total - available
	if bookedTarget < 0 {
		bookedTarget = 0
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	slots := make([]entities.Slot, 0, count)
	booked := 0
	for i := 0; i < count; i++ {
		row := rune('A' + i/slotsPerRow)
		col := i%slotsPerRow + 1

		status := entities.SlotAvailable
		if booked < bookedTarget && g.rnd.Float64() > g.cfg.BookedThreshold {
			status = entities.SlotBooked
			booked++
		}

		slots = append(slots, entities.Slot{
			ID:          fmt.Sprintf("slot-%d", i),
			SlotNumber:  fmt.Sprintf("%c%d", row, col),
			Status:      status,
			VehicleType: g.drawVehicleType(),
		})
	}
	return slots
}

func (g *Generator) drawVehicleType() string {
	if g.rnd.Float64() > g.cfg.CarThreshold {
		return entities.VehicleCar
	}
	if g.rnd.Float64() > 0.5 {
		return entities.VehicleSUV
	}
	return entities.VehicleBike
}
