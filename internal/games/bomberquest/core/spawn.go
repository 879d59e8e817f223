package core

// SpawnKind tags a SpawnRecord.
type SpawnKind uint8

const (
	SpawnWall SpawnKind = iota
	SpawnEntrance
	SpawnExit
	SpawnEnemy
	SpawnPowerUp
)

// String returns the string representation of a spawn kind.
func (k SpawnKind) String() string {
	switch k {
	case SpawnWall:
		return "Wall"
	case SpawnEntrance:
		return "Entrance"
	case SpawnExit:
		return "Exit"
	case SpawnEnemy:
		return "Enemy"
	case SpawnPowerUp:
		return "PowerUp"
	default:
		return "Unknown"
	}
}

// PowerUpKind identifies the stat a power-up raises.
type PowerUpKind uint8

const (
	PowerUpCapacity PowerUpKind = iota
	PowerUpRadius
)

// String returns the string representation of a power-up kind.
func (k PowerUpKind) String() string {
	switch k {
	case PowerUpCapacity:
		return "Capacity"
	case PowerUpRadius:
		return "Radius"
	default:
		return "Unknown"
	}
}

// SpawnRecord is one placement produced by a map source.
// Destructible is meaningful only for SpawnWall, PowerUp only for SpawnPowerUp.
type SpawnRecord struct {
	Kind         SpawnKind
	At           Coord
	Destructible bool
	PowerUp      PowerUpKind
}

// TypeCode is the numeric placement type used by map files.
type TypeCode int

const (
	CodeIndestructibleWall TypeCode = 0
	CodeDestructibleWall   TypeCode = 1
	CodeEntrance           TypeCode = 2
	CodeEnemy              TypeCode = 3
	CodeExit               TypeCode = 4
	CodeCapacityPowerUp    TypeCode = 5
	CodeRadiusPowerUp      TypeCode = 6
)

// WallRecord places a wall at c.
func WallRecord(c Coord, destructible bool) SpawnRecord {
	return SpawnRecord{Kind: SpawnWall, At: c, Destructible: destructible}
}

// EntranceRecord places the player start at c.
func EntranceRecord(c Coord) SpawnRecord {
	return SpawnRecord{Kind: SpawnEntrance, At: c}
}

// ExitRecord places the level exit at c.
func ExitRecord(c Coord) SpawnRecord {
	return SpawnRecord{Kind: SpawnExit, At: c}
}

// EnemyRecord places an enemy at c.
func EnemyRecord(c Coord) SpawnRecord {
	return SpawnRecord{Kind: SpawnEnemy, At: c}
}

// PowerUpRecord places a power-up of the given kind at c.
func PowerUpRecord(c Coord, kind PowerUpKind) SpawnRecord {
	return SpawnRecord{Kind: SpawnPowerUp, At: c, PowerUp: kind}
}

// ParseRecord converts a raw (x, y, typeCode) triple.
// Unknown codes return false.
func ParseRecord(x, y, code int) (SpawnRecord, bool) {
	c := C(x, y)
	switch TypeCode(code) {
	case CodeIndestructibleWall:
		return WallRecord(c, false), true
	case CodeDestructibleWall:
		return WallRecord(c, true), true
	case CodeEntrance:
		return EntranceRecord(c), true
	case CodeEnemy:
		return EnemyRecord(c), true
	case CodeExit:
		return ExitRecord(c), true
	case CodeCapacityPowerUp:
		return PowerUpRecord(c, PowerUpCapacity), true
	case CodeRadiusPowerUp:
		return PowerUpRecord(c, PowerUpRadius), true
	default:
		return SpawnRecord{}, false
	}
}

// Code returns the map-file type code for the record.
func (r SpawnRecord) Code() TypeCode {
	switch r.Kind {
	case SpawnWall:
		if r.Destructible {
			return CodeDestructibleWall
		}
		return CodeIndestructibleWall
	case SpawnEntrance:
		return CodeEntrance
	case SpawnEnemy:
		return CodeEnemy
	case SpawnExit:
		return CodeExit
	default:
		if r.PowerUp == PowerUpRadius {
			return CodeRadiusPowerUp
		}
		return CodeCapacityPowerUp
	}
}
