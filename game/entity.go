package game

// Rect is an axis-aligned box with its origin at the top-left corner
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Intersects reports whether two rects overlap. Touching edges do not count.
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.X+o.Width && o.X < r.X+r.Width &&
		r.Y < o.Y+o.Height && o.Y < r.Y+r.Height
}

// Entity holds the state shared by everything that lives in the arena
type Entity struct {
	// Position of the top-left corner in arena coordinates
	X, Y float64

	// Size of the bounding box in pixels
	Width, Height float64

	// Entity type identifier
	Type EntityType

	// Whether this entity is live; owners prune inactive entities
	Active bool
}

// EntityType identifies the type of entity
type EntityType int

const (
	EntityTypePlayer EntityType = iota
	EntityTypeEnemy
	EntityTypeProjectile
	EntityTypeCollectible
)

func (t EntityType) String() string {
	switch t {
	case EntityTypePlayer:
		return "player"
	case EntityTypeEnemy:
		return "enemy"
	case EntityTypeProjectile:
		return "projectile"
	case EntityTypeCollectible:
		return "collectible"
	default:
		return "unknown"
	}
}

// NewEntity creates an active entity with its top-left corner at (x, y)
func NewEntity(x, y, width, height float64, entityType EntityType) Entity {
	return Entity{
		X:      x,
		Y:      y,
		Width:  width,
		Height: height,
		Type:   entityType,
		Active: true,
	}
}

// NewEntityCentered creates an active entity centered on (cx, cy)
func NewEntityCentered(cx, cy, width, height float64, entityType EntityType) Entity {
	return NewEntity(cx-width/2, cy-height/2, width, height, entityType)
}

// Bounds returns the entity's bounding box
func (e *Entity) Bounds() Rect {
	return Rect{X: e.X, Y: e.Y, Width: e.Width, Height: e.Height}
}

// CenterX returns the horizontal center of the entity
func (e *Entity) CenterX() float64 {
	return e.X + e.Width/2
}

// Bottom returns the y coordinate of the entity's lower edge
func (e *Entity) Bottom() float64 {
	return e.Y + e.Height
}

// IsColliding checks if this entity is colliding with another entity.
// Inactive entities never collide.
func (e *Entity) IsColliding(other *Entity) bool {
	if !e.Active || !other.Active {
		return false
	}
	return e.Bounds().Intersects(other.Bounds())
}
