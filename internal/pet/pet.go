package pet

// Slot is where a shop item is worn. Equipping an item displaces whatever
// occupies its slot.
type Slot string

const (
	SlotHat       Slot = "hat"
	SlotAccessory Slot = "accessory"
	SlotOutfit    Slot = "outfit"
)

type Item struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Emoji string `json:"emoji"`
	Cost  int    `json:"cost"`
	Slot  Slot   `json:"slot"`
}

// Pet is the planner companion. XP doubles as shop currency, so buying
// clothing spends level progress.
type Pet struct {
	Name     string   `json:"name"`
	Type     string   `json:"type"`
	XP       int      `json:"xp"`
	Level    int      `json:"level"`
	Owned    []string `json:"ownedClothing"`
	Equipped []string `json:"equippedClothing"`
}

var catalogue = []Item{
	{ID: "crown", Name: "Crown", Emoji: "👑", Cost: 50, Slot: SlotHat},
	{ID: "tophat", Name: "Top Hat", Emoji: "🎩", Cost: 30, Slot: SlotHat},
	{ID: "cap", Name: "Cap", Emoji: "🧢", Cost: 20, Slot: SlotHat},
	{ID: "party", Name: "Party Hat", Emoji: "🥳", Cost: 25, Slot: SlotHat},
	{ID: "cowboy", Name: "Cowboy", Emoji: "🤠", Cost: 35, Slot: SlotHat},
	{ID: "wizard", Name: "Wizard", Emoji: "🧙", Cost: 55, Slot: SlotHat},
	{ID: "ribbon", Name: "Ribbon", Emoji: "🎀", Cost: 15, Slot: SlotAccessory},
	{ID: "glasses", Name: "Cool Glasses", Emoji: "😎", Cost: 25, Slot: SlotAccessory},
	{ID: "bowtie", Name: "Bow Tie", Emoji: "🎗️", Cost: 20, Slot: SlotAccessory},
	{ID: "sparkles", Name: "Sparkles", Emoji: "✨", Cost: 40, Slot: SlotAccessory},
	{ID: "star", Name: "Star Badge", Emoji: "⭐", Cost: 45, Slot: SlotAccessory},
	{ID: "flower", Name: "Flower", Emoji: "🌸", Cost: 15, Slot: SlotAccessory},
	{ID: "heart", Name: "Heart", Emoji: "❤️", Cost: 20, Slot: SlotAccessory},
	{ID: "music", Name: "Music", Emoji: "🎵", Cost: 30, Slot: SlotAccessory},
	{ID: "rainbow", Name: "Rainbow", Emoji: "🌈", Cost: 50, Slot: SlotAccessory},
	{ID: "scarf", Name: "Scarf", Emoji: "🧣", Cost: 35, Slot: SlotOutfit},
	{ID: "cape", Name: "Cape", Emoji: "🦸", Cost: 60, Slot: SlotOutfit},
	{ID: "ninja", Name: "Ninja", Emoji: "🥷", Cost: 70, Slot: SlotOutfit},
	{ID: "astronaut", Name: "Astronaut", Emoji: "👨‍🚀", Cost: 80, Slot: SlotOutfit},
	{ID: "king", Name: "Royal", Emoji: "🤴", Cost: 90, Slot: SlotOutfit},
}

var petTypes = []string{"🐱", "🐶", "🐰", "🐻", "🐼", "🦊", "🐨", "🐯"}

func Catalogue() []Item {
	out := make([]Item, len(catalogue))
	copy(out, catalogue)
	return out
}

func Types() []string {
	out := make([]string, len(petTypes))
	copy(out, petTypes)
	return out
}

func itemByID(id string) (Item, bool) {
	for _, it := range catalogue {
		if it.ID == id {
			return it, true
		}
	}
	return Item{}, false
}

func validType(t string) bool {
	for _, pt := range petTypes {
		if pt == t {
			return true
		}
	}
	return false
}

func levelFor(xp int) int {
	if xp < 0 {
		xp = 0
	}
	return xp/100 + 1
}

func defaultPet() Pet {
	return Pet{
		Name:     "Buddy",
		Type:     "🐱",
		XP:       0,
		Level:    1,
		Owned:    []string{},
		Equipped: []string{},
	}
}
