package cell

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrInvalidKind indicates a kind outside the enumeration or outside the set
// allowed by a mutation.
var ErrInvalidKind = errors.New("cell: invalid kind")

// Kind classifies a grid cell.
type Kind uint8

const (
	// Blank is an open cell with unit cost.
	Blank Kind = iota
	// Start is the unique search origin.
	Start
	// End is the unique search goal.
	End
	// Wall is impassable.
	Wall
	// Mud is passable terrain with a tripled cost.
	Mud

	kindCount
)

// MudCost is the cost multiplier applied when entering a Mud cell.
const MudCost = 3.0

// Role is the display role a renderer derives from a Kind.
type Role uint8

const (
	// RoleOpen is painted as free floor.
	RoleOpen Role = iota
	// RoleEndpoint is painted as the start or end marker.
	RoleEndpoint
	// RoleObstacle is painted as a wall.
	RoleObstacle
	// RoleTerrain is painted as cost-modified ground.
	RoleTerrain
)

// Lookup tables indexed by Kind.
var (
	kindNames = [kindCount]string{"blank", "start", "end", "wall", "mud"}
	kindCosts = [kindCount]float64{1, 1, 1, math.Inf(1), MudCost}
	kindRoles = [kindCount]Role{RoleOpen, RoleEndpoint, RoleEndpoint, RoleObstacle, RoleTerrain}
)

// Editable lists the kinds a consumer may paint onto a cell directly.
// Start and End only move through the grid's relocation operations.
var Editable = []Kind{Blank, Wall, Mud}

// Valid reports whether k is one of the declared kinds.
func (k Kind) Valid() bool { return k < kindCount }

// String returns the lower-case kind name.
func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
	return kindNames[k]
}

// Cost returns the multiplier applied to an edge entering a cell of kind k.
// Wall and invalid kinds cost +Inf.
func (k Kind) Cost() float64 {
	if !k.Valid() {
		return math.Inf(1)
	}
	return kindCosts[k]
}

// Traversable reports whether a search may enter a cell of kind k.
func (k Kind) Traversable() bool {
	return k.Valid() && k != Wall
}

// Role returns the display role of k.
func (k Kind) Role() Role {
	if !k.Valid() {
		return RoleObstacle
	}
	return kindRoles[k]
}

// Endpoint reports whether k is Start or End.
func (k Kind) Endpoint() bool { return k == Start || k == End }

// persistent reports whether k survives a run reset.
func (k Kind) persistent() bool {
	switch k {
	case Start, End, Wall, Mud:
		return true
	}
	return false
}

// ParseKind resolves a kind name (case-insensitive) to its Kind.
func ParseKind(name string) (Kind, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for k, kn := range kindNames {
		if kn == n {
			return Kind(k), nil
		}
	}
	return Blank, fmt.Errorf("%w: %q (allowed: %s)", ErrInvalidKind, name, strings.Join(kindNames[:], ", "))
}

// ValidateEditable checks that k belongs to Editable.
func ValidateEditable(k Kind) error {
	for _, e := range Editable {
		if k == e {
			return nil
		}
	}
	names := make([]string, len(Editable))
	for i, e := range Editable {
		names[i] = e.String()
	}
	return fmt.Errorf("%w: %s (allowed: %s)", ErrInvalidKind, k, strings.Join(names, ", "))
}
