package model

import "strings"

// Location is one of the bookable rooms.
type Location int

// Declaration order groups rooms by campus and is the PC listing order.
const (
	AllisonRoadClassroom Location = iota + 1
	HillCenter
	BeckHall
	TillettHall
	AcademicBuilding
	MurrayHall
)

type locationInfo struct {
	room     string
	building string
	campus   string
}

var locations = map[Location]locationInfo{
	AllisonRoadClassroom: {room: "ARC103", building: "Allison Road Classroom", campus: "Busch"},
	HillCenter:           {room: "HLL114", building: "Hill Center", campus: "Busch"},
	BeckHall:             {room: "BE_AUD", building: "Beck Hall", campus: "Livingston"},
	TillettHall:          {room: "TIL232", building: "Tillett Hall", campus: "Livingston"},
	AcademicBuilding:     {room: "AB2225", building: "Academic Building", campus: "College Avenue"},
	MurrayHall:           {room: "MU302", building: "Murray Hall", campus: "College Avenue"},
}

func Locations() []Location {
	return []Location{AllisonRoadClassroom, HillCenter, BeckHall, TillettHall, AcademicBuilding, MurrayHall}
}

// ParseLocation looks a location up by room code, ignoring case.
func ParseLocation(room string) (Location, bool) {
	for _, l := range Locations() {
		if strings.EqualFold(locations[l].room, room) {
			return l, true
		}
	}
	return 0, false
}

func (l Location) Valid() bool {
	_, ok := locations[l]
	return ok
}

func (l Location) Room() string     { return locations[l].room }
func (l Location) Building() string { return locations[l].building }
func (l Location) Campus() string   { return locations[l].campus }

// String renders "ARC103 (Allison Road Classroom, Busch)".
func (l Location) String() string {
	if !l.Valid() {
		return "unknown"
	}
	return l.Room() + " (" + l.Building() + ", " + l.Campus() + ")"
}
