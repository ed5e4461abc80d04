package sheetgrid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kazuyasi/trpg-json/internal/entities/sw25"
	"github.com/kazuyasi/trpg-json/internal/errors"
)

func singlePartMonster() *sw25.Monster {
	return &sw25.Monster{
		Name:             "テストモンスター",
		Category:         "蛮族",
		Level:            6,
		Page:             "TEST001",
		LifeResistance:   16,
		MentalResistance: 16,
		Fame:             14,
		WeaknessValue:    17,
		Initiative:       14,
		Weakness:         "属性ダメージ+3",
		CommonAbilities:  "飛行",
		GroundSpeed:      22,
		AirSpeed:         22,
		AirSpeedDesc:     "飛行",
		Parts: []sw25.Part{{
			Name: "", IsCore: true, HP: 48, MP: 75, Armor: 5,
			HitRate: 15, Dodge: 15, Damage: 6, PartCount: 1,
			SpecificAbilities: "飛行適性",
		}},
	}
}

func multiPartMonster() *sw25.Monster {
	return &sw25.Monster{
		Name:             "複合型モンスター",
		Category:         "蛮族",
		Level:            7,
		Page:             "TEST002",
		LifeResistance:   17,
		MentalResistance: 17,
		Fame:             15,
		WeaknessValue:    18,
		Initiative:       15,
		Weakness:         "属性ダメージ+2",
		CommonAbilities:  "強靭な皮膚",
		GroundSpeed:      sw25.NoMovement,
		AirSpeed:         sw25.NoMovement,
		Parts: []sw25.Part{
			{Name: "頭部", IsCore: true, HP: 48, MP: 75, Armor: 5, HitRate: 15, Dodge: 15, SpecificAbilities: "魔法適性"},
			{Name: "胴体", IsCore: false, HP: 43, MP: 20, Armor: 7, HitRate: 16, Dodge: 14, SpecificAbilities: "飛翔"},
		},
	}
}

func TestRender_SinglePart(t *testing.T) {
	rows := Render(singlePartMonster(), 3)
	require.Len(t, rows, 2)

	odd := rows[0]
	assert.Equal(t, 3, odd.Number)
	assert.Equal(t, "★テストモンスター", odd.Cells[colName])
	assert.Equal(t, "48", odd.Cells[colHP])
	assert.Equal(t, "75", odd.Cells[colMP])
	assert.Equal(t, "5", odd.Cells[colArmor])
	assert.Equal(t, "14", odd.Cells[colInitiative])
	assert.Equal(t, "16", odd.Cells[colLifeResistance])
	assert.Equal(t, "3", odd.Cells[colSlots])
	assert.Equal(t, "TEST001", odd.Cells[colPage])
	assert.Equal(t, "飛行", odd.Cells[colAbilities])
	assert.Equal(t, "14/17", odd.Cells[colKnowledge])

	even := rows[1]
	assert.Equal(t, 4, even.Number)
	assert.Equal(t, "飛行適性", even.Cells[colAbilities])
	assert.Equal(t, "ダメ+3", even.Cells[colKnowledge])
}

func TestRender_MultiPartPlaceholders(t *testing.T) {
	rows := Render(multiPartMonster(), 3)
	require.Len(t, rows, 4)

	first := rows[0]
	assert.Equal(t, "★複合型モンスター\n(頭部)", first.Cells[colName])
	assert.Equal(t, "15", first.Cells[colInitiative])
	assert.Equal(t, "ダメ+2", rows[1].Cells[colKnowledge])

	second := rows[2]
	assert.Equal(t, 5, second.Number)
	assert.Equal(t, "複合型モンスター\n(胴体)", second.Cells[colName])
	assert.Equal(t, "-", second.Cells[colInitiative])
	assert.Equal(t, "-", second.Cells[colLifeResistance])
	assert.Equal(t, "-", second.Cells[colMentalResistance])
	assert.Equal(t, "-/-", second.Cells[colKnowledge])
	assert.Equal(t, "-", rows[3].Cells[colKnowledge])
}

func TestRender_MergedColumnsAbsentOnEvenRows(t *testing.T) {
	rows := Render(singlePartMonster(), 1)
	even := rows[1]

	for _, col := range []int{colName, colHP, colMP, colArmor, colInitiative, colHitRate, colDodge, colPage} {
		_, ok := even.Cells[col]
		assert.False(t, ok, "column %d must be absent on the even row", col)
	}
}

func TestRender_NegativeMPRendersDash(t *testing.T) {
	m := singlePartMonster()
	m.Parts[0].MP = -1

	rows := Render(m, 1)
	assert.Equal(t, "-", rows[0].Cells[colMP])
}

func TestRender_MovementCells(t *testing.T) {
	m := singlePartMonster()
	m.GroundSpeed = 18
	m.GroundSpeedDesc = ""
	m.AirSpeed = 20
	m.AirSpeedDesc = "飛行"

	rows := Render(m, 1)
	assert.Equal(t, "18", rows[0].Cells[colGroundSpeed])
	assert.Equal(t, "20\n(飛行)", rows[0].Cells[colAirSpeed])

	m.GroundSpeed = sw25.NoMovement
	rows = Render(m, 1)
	assert.Equal(t, "-", rows[0].Cells[colGroundSpeed])
}

func TestRender_EmptyAbilitiesLeaveCellsAbsent(t *testing.T) {
	m := singlePartMonster()
	m.CommonAbilities = ""
	m.Parts[0].SpecificAbilities = ""

	rows := Render(m, 1)
	_, ok := rows[0].Cells[colAbilities]
	assert.False(t, ok)
	_, ok = rows[1].Cells[colAbilities]
	assert.False(t, ok)
}

func TestRender_EmptyWeaknessRendersDash(t *testing.T) {
	m := singlePartMonster()
	m.Weakness = ""

	rows := Render(m, 1)
	assert.Equal(t, "-", rows[1].Cells[colKnowledge])
}

func TestTransformWeakness(t *testing.T) {
	tests := []struct{ in, want string }{
		{"炎属性ダメージ+3", "炎ダメ+3"},
		{"純エネルギー属性ダメージ+2", "純Eダメ+2"},
		{"エネルギーとダメージ属性", "Eとダメ"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, transformWeakness(tt.in), "input %q", tt.in)
	}
}

func TestRender_Idempotent(t *testing.T) {
	m := multiPartMonster()
	assert.Equal(t, Render(m, 3), Render(m, 3))
}

func TestValidateSpreadsheetID(t *testing.T) {
	assert.Error(t, ValidateSpreadsheetID(""))
	assert.Error(t, ValidateSpreadsheetID("abc123"))
	assert.NoError(t, ValidateSpreadsheetID("1BxiMVs0XRA5nFMKUVfIz487hJblLvZQvq_fHM9GjMhs"))
	assert.NoError(t, ValidateSpreadsheetID("1-BxiMVs0XRA5nFMKUVfIz487hJblLvZQvq_fHM9GjMhs"))
}

type captureWriter struct {
	payload     *Payload
	destination string
}

func (c *captureWriter) WriteRows(p *Payload, destination string) error {
	c.payload = p
	c.destination = destination
	return nil
}

func TestExporter_StacksMonstersSequentially(t *testing.T) {
	cw := &captureWriter{}
	e := NewExporter(cw)

	err := e.Export([]sw25.Monster{*singlePartMonster(), *multiPartMonster()}, "sheet-id")
	require.NoError(t, err)
	require.NotNil(t, cw.payload)
	assert.Equal(t, "sheet-id", cw.destination)
	assert.Equal(t, rowColumns, cw.payload.Width)
	assert.NotEmpty(t, cw.payload.Columns)

	require.Len(t, cw.payload.Rows, 6)
	for i, row := range cw.payload.Rows {
		assert.Equal(t, i+1, row.Number)
	}
}

func TestExporter_EmptyListFails(t *testing.T) {
	e := NewExporter(&captureWriter{})
	err := e.Export(nil, "sheet-id")
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
}
