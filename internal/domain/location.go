package domain

import "fmt"

// LocationKey addresses a single tile of a map. Its string form doubles as the room name.
type LocationKey struct {
	MapID string `json:"mapId" yaml:"map_id"`
	Y     int    `json:"y" yaml:"y"`
	X     int    `json:"x" yaml:"x"`
}

func (l LocationKey) String() string {
	return fmt.Sprintf("%s:%d:%d", l.MapID, l.Y, l.X)
}
