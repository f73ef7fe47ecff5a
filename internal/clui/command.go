package clui

// Command pairs a verb with the usage line shown by help.
type Command struct {
	Keyword string
	Format  string
}

// Commands lists every scriptable instruction, in help order. The
// interactive loop additionally accepts "help" and "exit".
var Commands = []Command{
	{"setup", "setup <networkName> or setup <networkName> <nStations> <nSlots> <side> <nBikes>"},
	{"runtest", "runtest <fileName>"},
	{"stationOnline", "stationOnline <networkName> <stationID>"},
	{"stationOffline", "stationOffline <networkName> <stationID>"},
	{"slotOnline", "slotOnline <networkName> <slotID> <time>"},
	{"slotOffline", "slotOffline <networkName> <slotID> <time>"},
	{"addStation", "addStation <networkName> <type> <numSlots> <positionX> <positionY> (the station type can be either \"plus\" or \"standard\")"},
	{"addSlot", "addSlot <networkName> <stationID> <numSlots>"},
	{"addBike", "addBike <networkName> <type> <time> or addBike <networkName> <stationID> <type> <time> (the bike type can be either \"electric\" or \"mechanic\")"},
	{"addUser", "addUser <username> <cardType> <networkName> (the card type can be \"vmax\", \"vlibre\" or \"credit\")"},
	{"rentBike", "rentBike <userID> <stationID> <time> <networkName> or rentBike <userID> <stationID> <bikeType> <time> <networkName>"},
	{"returnBike", "returnBike <userID> <stationID> <time> <networkName>"},
	{"display", "display <networkName>"},
	{"displayStation", "displayStation <networkName> <stationID>"},
	{"displayUser", "displayUser <networkName> <userID>"},
	{"sortStation", "sortStation <networkName> <sortingStrategy> <startTime> <endTime> (the sorting strategy can be \"more-used\" or \"least-occupied\")"},
	{"calculateItinerary", "calculateItinerary <networkName> <userID> <startX> <startY> <destinationX> <destinationY> <pathStrategy>"},
	{"displayItinerary", "displayItinerary <networkName> <userID>"},
}

func findCommand(keyword string) (Command, bool) {
	for _, c := range Commands {
		if c.Keyword == keyword {
			return c, true
		}
	}
	return Command{}, false
}
