package domain

import "strings"

// SlotTimeBlock is one weekly meeting of a slot code.
type SlotTimeBlock struct {
	Day       Weekday
	StartTime string
	EndTime   string
}

func block(day Weekday, start, end string) SlotTimeBlock {
	return SlotTimeBlock{Day: day, StartTime: start, EndTime: end}
}

// slotTable is the FFCS timetable grid. Lab periods keep the irregular
// minute boundaries of the published timetable and must not be recomputed.
var slotTable = map[string][]SlotTimeBlock{
	// Morning theory
	"A1": {
		block(Monday, "08:00", "08:50"),
		block(Wednesday, "09:00", "09:50"),
	},
	"B1": {
		block(Tuesday, "09:00", "09:50"),
		block(Thursday, "10:00", "10:50"),
	},
	"C1": {
		block(Tuesday, "08:00", "08:50"),
		block(Wednesday, "11:00", "11:50"),
	},
	"D1": {
		block(Monday, "10:00", "10:50"),
		block(Wednesday, "08:00", "08:50"),
	},
	"E1": {
		block(Tuesday, "11:00", "11:50"),
		block(Thursday, "08:00", "08:50"),
	},
	"F1": {
		block(Monday, "09:00", "09:50"),
		block(Wednesday, "10:00", "10:50"),
	},
	"G1": {
		block(Tuesday, "10:00", "10:50"),
		block(Thursday, "09:00", "09:50"),
	},

	// Morning tutorial and extra
	"TA1":  {block(Friday, "10:00", "10:50")},
	"TB1":  {block(Monday, "11:00", "11:50")},
	"TC1":  {block(Friday, "09:00", "09:50")},
	"TD1":  {block(Thursday, "11:00", "11:50")},
	"TE1":  {block(Wednesday, "12:00", "12:50")},
	"TF1":  {block(Friday, "08:00", "08:50")},
	"TG1":  {block(Monday, "12:00", "12:50")},
	"TAA1": {block(Tuesday, "12:00", "12:50")},
	"TBB1": {block(Friday, "12:00", "12:50")},
	"TCC1": {block(Thursday, "12:00", "12:50")},
	"TDD1": {block(Friday, "11:00", "11:50")},

	// Evening theory
	"A2": {
		block(Monday, "14:00", "14:50"),
		block(Wednesday, "15:00", "15:50"),
	},
	"B2": {
		block(Tuesday, "15:00", "15:50"),
		block(Thursday, "16:00", "16:50"),
	},
	"C2": {
		block(Tuesday, "14:00", "14:50"),
		block(Wednesday, "17:00", "17:50"),
	},
	"D2": {
		block(Monday, "16:00", "16:50"),
		block(Wednesday, "14:00", "14:50"),
	},
	"E2": {
		block(Tuesday, "17:00", "17:50"),
		block(Thursday, "14:00", "14:50"),
	},
	"F2": {
		block(Monday, "15:00", "15:50"),
		block(Wednesday, "16:00", "16:50"),
	},
	"G2": {
		block(Tuesday, "16:00", "16:50"),
		block(Thursday, "15:00", "15:50"),
	},

	// Evening tutorial and extra
	"TA2":  {block(Friday, "16:00", "16:50")},
	"TB2":  {block(Monday, "17:00", "17:50")},
	"TC2":  {block(Friday, "15:00", "15:50")},
	"TD2":  {block(Thursday, "17:00", "17:50")},
	"TE2":  {block(Wednesday, "18:00", "18:50")},
	"TF2":  {block(Friday, "14:00", "14:50")},
	"TG2":  {block(Monday, "18:00", "18:50")},
	"TAA2": {block(Tuesday, "18:00", "18:50")},
	"TBB2": {block(Friday, "18:00", "18:50")},
	"TCC2": {block(Thursday, "18:00", "18:50")},
	"TDD2": {block(Friday, "17:00", "17:50")},

	// Morning labs
	"L1":  {block(Monday, "08:00", "08:50")},
	"L2":  {block(Monday, "08:51", "09:40")},
	"L3":  {block(Monday, "09:51", "10:40")},
	"L4":  {block(Monday, "10:41", "11:30")},
	"L5":  {block(Monday, "11:40", "12:30")},
	"L6":  {block(Monday, "12:31", "13:20")},
	"L7":  {block(Tuesday, "08:00", "08:50")},
	"L8":  {block(Tuesday, "08:51", "09:40")},
	"L9":  {block(Tuesday, "09:51", "10:40")},
	"L10": {block(Tuesday, "10:41", "11:30")},
	"L11": {block(Tuesday, "11:40", "12:30")},
	"L12": {block(Tuesday, "12:31", "13:20")},
	"L13": {block(Wednesday, "08:00", "08:50")},
	"L14": {block(Wednesday, "08:51", "09:40")},
	"L15": {block(Wednesday, "09:51", "10:40")},
	"L16": {block(Wednesday, "10:41", "11:30")},
	"L17": {block(Wednesday, "11:40", "12:30")},
	"L18": {block(Wednesday, "12:31", "13:20")},
	"L19": {block(Thursday, "08:00", "08:50")},
	"L20": {block(Thursday, "08:51", "09:40")},
	"L21": {block(Thursday, "09:51", "10:40")},
	"L22": {block(Thursday, "10:41", "11:30")},
	"L23": {block(Thursday, "11:40", "12:30")},
	"L24": {block(Thursday, "12:31", "13:20")},
	"L25": {block(Friday, "08:00", "08:50")},
	"L26": {block(Friday, "08:51", "09:40")},
	"L27": {block(Friday, "09:51", "10:40")},
	"L28": {block(Friday, "10:41", "11:30")},
	"L29": {block(Friday, "11:40", "12:30")},
	"L30": {block(Friday, "12:31", "13:20")},

	// Evening labs
	"L31": {block(Monday, "14:00", "14:50")},
	"L32": {block(Monday, "14:51", "15:40")},
	"L33": {block(Monday, "15:51", "16:40")},
	"L34": {block(Monday, "16:41", "17:30")},
	"L35": {block(Monday, "17:40", "18:30")},
	"L36": {block(Monday, "18:31", "19:20")},
	"L37": {block(Tuesday, "14:00", "14:50")},
	"L38": {block(Tuesday, "14:51", "15:40")},
	"L39": {block(Tuesday, "15:51", "16:40")},
	"L40": {block(Tuesday, "16:41", "17:30")},
	"L41": {block(Tuesday, "17:40", "18:30")},
	"L42": {block(Tuesday, "18:31", "19:20")},
	"L43": {block(Wednesday, "14:00", "14:50")},
	"L44": {block(Wednesday, "14:51", "15:40")},
	"L45": {block(Wednesday, "15:51", "16:40")},
	"L46": {block(Wednesday, "16:41", "17:30")},
	"L47": {block(Wednesday, "17:40", "18:30")},
	"L48": {block(Wednesday, "18:31", "19:20")},
	"L49": {block(Thursday, "14:00", "14:50")},
	"L50": {block(Thursday, "14:51", "15:40")},
	"L51": {block(Thursday, "15:51", "16:40")},
	"L52": {block(Thursday, "16:41", "17:30")},
	"L53": {block(Thursday, "17:40", "18:30")},
	"L54": {block(Thursday, "18:31", "19:20")},
	"L55": {block(Friday, "14:00", "14:50")},
	"L56": {block(Friday, "14:51", "15:40")},
	"L57": {block(Friday, "15:51", "16:40")},
	"L58": {block(Friday, "16:41", "17:30")},
	"L59": {block(Friday, "17:40", "18:30")},
	"L60": {block(Friday, "18:31", "19:20")},
}

// LookupSlot returns the meetings for a slot code, ignoring case and
// surrounding whitespace. ok is false for codes absent from the grid.
// The returned slice is a copy.
func LookupSlot(code string) (blocks []SlotTimeBlock, ok bool) {
	found, ok := slotTable[strings.ToUpper(strings.TrimSpace(code))]
	if !ok {
		return nil, false
	}

	return append([]SlotTimeBlock(nil), found...), true
}

// SlotCodes lists every code in the grid, in no particular order.
func SlotCodes() []string {
	codes := make([]string, 0, len(slotTable))
	for code := range slotTable {
		codes = append(codes, code)
	}

	return codes
}
