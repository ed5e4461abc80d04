package sheetgrid

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kazuyasi/trpg-json/internal/entities/sw25"
)

// rowColumns is the width of the sheet template.
const rowColumns = 54

// Zero-based column indexes of the sheet template.
const (
	colName             = 0
	colHP               = 11
	colMP               = 15
	colArmor            = 17
	colInitiative       = 19
	colLifeResistance   = 21
	colMentalResistance = 23
	colSlots            = 25
	colGroundSpeed      = 27
	colAirSpeed         = 29
	colHitRate          = 31
	colDodge            = 33
	colPage             = 35
	colAbilities        = 38
	colKnowledge        = 48
)

// placeholder marks a first-part-only cell on later parts.
const placeholder = "-"

// MergeClass tells the row writer how a column is merged in the sheet
// template.
type MergeClass string

const (
	// MergeFull spans both rows of a part's block. The even row never
	// carries a value for these columns.
	MergeFull MergeClass = "full"
	// MergeHorizontal merges sideways only. Odd and even rows carry
	// independent values.
	MergeHorizontal MergeClass = "horizontal"
)

// Column describes one labeled column of the sheet template.
type Column struct {
	Index int        `json:"index"`
	Label string     `json:"label"`
	Merge MergeClass `json:"merge"`
}

// Columns returns the template layout the row writer needs to place
// values without re-deriving the merge regions.
func Columns() []Column {
	return []Column{
		{Index: colName, Label: "名前", Merge: MergeFull},
		{Index: colHP, Label: "HP", Merge: MergeFull},
		{Index: colMP, Label: "MP", Merge: MergeFull},
		{Index: colArmor, Label: "防護点", Merge: MergeFull},
		{Index: colInitiative, Label: "先制値", Merge: MergeFull},
		{Index: colLifeResistance, Label: "生命抵抗力", Merge: MergeFull},
		{Index: colMentalResistance, Label: "精神抵抗力", Merge: MergeFull},
		{Index: colSlots, Label: "枠", Merge: MergeFull},
		{Index: colGroundSpeed, Label: "移動速度(地上)", Merge: MergeFull},
		{Index: colAirSpeed, Label: "移動速度(飛行)", Merge: MergeFull},
		{Index: colHitRate, Label: "命中力", Merge: MergeFull},
		{Index: colDodge, Label: "回避力", Merge: MergeFull},
		{Index: colPage, Label: "参照", Merge: MergeFull},
		{Index: colAbilities, Label: "特殊能力", Merge: MergeHorizontal},
		{Index: colKnowledge, Label: "知名度/弱点", Merge: MergeHorizontal},
	}
}

// Row is one sparse logical row. Cells absent from the map stay
// genuinely unwritten so merged regions keep their spanning value.
type Row struct {
	Number int            `json:"number"`
	Cells  map[int]string `json:"cells"`
}

// Render projects a monster into 2 rows per part, numbered from
// startRow. The odd row of each block carries the merged statistics,
// the even row the per-part ability text. First-part-only columns
// degrade to a placeholder dash on later parts.
func Render(m *sw25.Monster, startRow int) []Row {
	rows := make([]Row, 0, 2*len(m.Parts))
	for i := range m.Parts {
		p := &m.Parts[i]
		first := i == 0
		rows = append(rows,
			Row{Number: startRow + 2*i, Cells: oddCells(m, p, first)},
			Row{Number: startRow + 2*i + 1, Cells: evenCells(m, p, first)},
		)
	}
	return rows
}

func oddCells(m *sw25.Monster, p *sw25.Part, first bool) map[int]string {
	cells := map[int]string{
		colName:    nameCell(m.Name, p),
		colHP:      strconv.Itoa(p.HP),
		colArmor:   strconv.Itoa(p.Armor),
		colSlots:   "3",
		colHitRate: strconv.Itoa(p.HitRate),
		colDodge:   strconv.Itoa(p.Dodge),
		colPage:    m.Page,
	}

	if p.MP >= 0 {
		cells[colMP] = strconv.Itoa(p.MP)
	} else {
		cells[colMP] = placeholder
	}

	if first {
		cells[colInitiative] = strconv.Itoa(m.Initiative)
		cells[colLifeResistance] = strconv.Itoa(m.LifeResistance)
		cells[colMentalResistance] = strconv.Itoa(m.MentalResistance)
		cells[colKnowledge] = fmt.Sprintf("%d/%d", m.Fame, m.WeaknessValue)
	} else {
		cells[colInitiative] = placeholder
		cells[colLifeResistance] = placeholder
		cells[colMentalResistance] = placeholder
		cells[colKnowledge] = "-/-"
	}

	cells[colGroundSpeed] = movementCell(m.GroundSpeed, m.GroundSpeedDesc)
	cells[colAirSpeed] = movementCell(m.AirSpeed, m.AirSpeedDesc)

	if m.CommonAbilities != "" {
		cells[colAbilities] = m.CommonAbilities
	}
	return cells
}

func evenCells(m *sw25.Monster, p *sw25.Part, first bool) map[int]string {
	cells := make(map[int]string, 2)
	if p.SpecificAbilities != "" {
		cells[colAbilities] = p.SpecificAbilities
	}

	switch {
	case first && m.Weakness != "":
		cells[colKnowledge] = transformWeakness(m.Weakness)
	default:
		cells[colKnowledge] = placeholder
	}
	return cells
}

// nameCell renders the name column: the part name joins on its own
// line, core parts get the emphasis marker.
func nameCell(monster string, p *sw25.Part) string {
	s := monster
	if p.Name != "" {
		s = fmt.Sprintf("%s\n(%s)", s, p.Name)
	}
	if p.IsCore {
		s = "★" + s
	}
	return s
}

// movementCell renders a speed with its description on a second line.
// A speed of -1 means the movement mode does not apply.
func movementCell(speed int, desc string) string {
	if speed == sw25.NoMovement {
		return placeholder
	}
	if desc == "" {
		return strconv.Itoa(speed)
	}
	return fmt.Sprintf("%d\n(%s)", speed, desc)
}

var weaknessReplacer = strings.NewReplacer(
	"エネルギー", "E",
	"ダメージ", "ダメ",
	"属性", "",
)

func transformWeakness(weakness string) string {
	return weaknessReplacer.Replace(weakness)
}
