package udonarium

import (
	"archive/zip"
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kazuyasi/trpg-json/internal/entities/sw25"
	"github.com/kazuyasi/trpg-json/internal/errors"
)

func testMonster() *sw25.Monster {
	return &sw25.Monster{
		Name:             "テストモンスター",
		Category:         "蛮族",
		Level:            6,
		LifeResistance:   16,
		MentalResistance: 16,
		Fame:             14,
		WeaknessValue:    17,
		Initiative:       14,
		Weakness:         "炎属性ダメージ+3",
		CommonAbilities:  "飛行",
		Parts: []sw25.Part{{
			Name: "", IsCore: true, HP: 50, MP: 50, Armor: 5,
			HitRate: 15, Dodge: 15, Damage: 6, PartCount: 1,
		}},
	}
}

func treant() *sw25.Monster {
	return &sw25.Monster{
		Name:     "Treant",
		Category: "plant",
		Level:    8,
		Parts: []sw25.Part{
			{Name: "Trunk", IsCore: true, HP: 105, MP: 45, Armor: 9, HitRate: 21, Dodge: 18, Damage: 12},
			{Name: "Root", IsCore: false, HP: 75, MP: 20, Armor: 7, HitRate: 19, Dodge: 15, Damage: 9},
			{Name: "Root", IsCore: false, HP: 75, MP: 20, Armor: 7, HitRate: 19, Dodge: 15, Damage: 9},
		},
	}
}

func TestPartNames_SinglePart(t *testing.T) {
	names, err := partNames(testMonster())
	require.NoError(t, err)
	require.Len(t, names, 1)
	assert.Equal(t, "テストモンスター", names[0].File)
	assert.Equal(t, "★テストモンスター", names[0].Display)
}

func TestPartNames_SinglePartUsesMonsterNameEvenWhenNamed(t *testing.T) {
	m := testMonster()
	m.Parts[0].Name = "本体"

	names, err := partNames(m)
	require.NoError(t, err)
	assert.Equal(t, "テストモンスター", names[0].File)
	assert.Equal(t, "★テストモンスター\n(本体)", names[0].Display)
}

func TestPartNames_DuplicateSuffixes(t *testing.T) {
	names, err := partNames(treant())
	require.NoError(t, err)
	require.Len(t, names, 3)
	assert.Equal(t, "Treant_Trunk", names[0].File)
	assert.Equal(t, "Treant_Root0", names[1].File)
	assert.Equal(t, "Treant_Root1", names[2].File)
}

func TestPartNames_UnnamedParts(t *testing.T) {
	m := &sw25.Monster{
		Name: "Hydra",
		Parts: []sw25.Part{
			{Name: "", IsCore: true},
			{Name: "", IsCore: false},
			{Name: "首", IsCore: false},
		},
	}

	names, err := partNames(m)
	require.NoError(t, err)
	assert.Equal(t, "Hydra_core", names[0].File)
	assert.Equal(t, "Hydra_1", names[1].File)
	assert.Equal(t, "Hydra_首", names[2].File)
}

func TestPartNames_CollisionIsPackagingError(t *testing.T) {
	m := &sw25.Monster{
		Name: "X",
		Parts: []sw25.Part{
			{Name: "", IsCore: true},
			{Name: "core", IsCore: false},
		},
	}

	_, err := partNames(m)
	require.Error(t, err)
	assert.True(t, errors.IsPackagingFailed(err))
}

func TestDisplayName_AuxiliaryPartHasNoMarker(t *testing.T) {
	p := &sw25.Part{Name: "Root"}
	assert.Equal(t, "Treant\n(Root)", displayName("Treant", p))
}

func TestAdjustValue(t *testing.T) {
	assert.Equal(t, 8, AdjustValue(15))
	assert.Equal(t, 0, AdjustValue(7))
}

func TestTransformWeakness(t *testing.T) {
	tests := []struct{ in, want string }{
		{"炎属性ダメージ+3", "炎ダメ+3"},
		{"純エネルギー属性ダメージ+2", "純Eダメ+2"},
		{"ダメージ+1", "ダメ+1"},
		{"エネルギーとダメージ属性", "Eとダメ"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, TransformWeakness(tt.in), "input %q", tt.in)
	}
}

func TestTransform_NegativeMPBecomesZero(t *testing.T) {
	m := testMonster()
	m.Parts[0].MP = -1

	names, err := partNames(m)
	require.NoError(t, err)
	rm := transform(m, names)
	assert.Equal(t, 0, rm.Parts[0].MP)
}

func renderOnly(t *testing.T, m *sw25.Monster, idx int) string {
	t.Helper()
	docs, err := Documents(m)
	require.NoError(t, err)
	require.Greater(t, len(docs), idx)
	return string(docs[idx].XML)
}

func TestRenderPartXML_CoreSections(t *testing.T) {
	got := renderOnly(t, testMonster(), 0)

	assert.True(t, strings.HasPrefix(got, "<?xml version=\"1.0\" encoding=\"utf-8\"?>"))
	for _, section := range []string{"リソース", "ステータス・バフ・デバフ", "特殊能力", "戦闘準備", "情報", "魔物知識"} {
		assert.Contains(t, got, fmt.Sprintf("name=\"%s\"", section))
	}
	// 知名度/弱点値 pair with initiative on the next line
	assert.Contains(t, got, "14/17&#xA;14<")
	assert.Contains(t, got, "蛮族 Lv.6")
	// weakness text is shortened
	assert.Contains(t, got, "炎ダメ+3")
}

func TestRenderPartXML_AdjustedStatusValues(t *testing.T) {
	m := testMonster()
	m.Parts[0].HitRate = 20
	m.Parts[0].Dodge = 18
	m.Parts[0].Damage = 8
	m.LifeResistance = 18
	m.MentalResistance = 17

	got := renderOnly(t, m, 0)

	assert.Contains(t, got, ">13</data>") // hit 20-7
	assert.Contains(t, got, ">11</data>") // dodge 18-7
	assert.Contains(t, got, ">10</data>") // mental 17-7
	// damage stays unadjusted
	assert.Contains(t, got, "name=\"打撃点\">8<")
}

func TestRenderPartXML_NonCoreOmitsRecordSections(t *testing.T) {
	m := treant()
	got := renderOnly(t, m, 1)

	assert.NotContains(t, got, "戦闘準備")
	assert.NotContains(t, got, "\"情報\"")
	assert.NotContains(t, got, "魔物知識")
	// but keeps the shared sections and palette
	assert.Contains(t, got, "特殊能力")
	assert.Contains(t, got, "生命抵抗力")
	assert.Contains(t, got, "<chat-palette dicebot=\"SwordWorld2.5\">")
}

func TestRenderPartXML_NegativeMPRendersZero(t *testing.T) {
	m := testMonster()
	m.Parts[0].MP = -1

	got := renderOnly(t, m, 0)
	assert.Contains(t, got, "name=\"MP\" currentValue=\"0\"")
	assert.NotContains(t, got, "-1")
}

func TestRenderPartXML_ChatPaletteCommands(t *testing.T) {
	got := renderOnly(t, testMonster(), 0)

	for _, cmd := range []string{
		"2d+{命中力}　命中判定",
		"2d+{打撃点}　ダメージロール",
		"2d+{回避力}　回避判定",
		"2d+{生命抵抗力}　生命抵抗判定",
		"2d+{精神抵抗力}　精神抵抗判定",
	} {
		assert.Contains(t, got, cmd)
	}
	assert.Equal(t, 5, strings.Count(got, "2d+{"), "exactly five dice commands")

	// section order
	calc := strings.Index(got, "//-----計算")
	fixed := strings.Index(got, "//-----固定値判定")
	dice := strings.Index(got, "//-----ダイス判定")
	require.NotEqual(t, -1, calc)
	assert.Less(t, calc, fixed)
	assert.Less(t, fixed, dice)
}

func TestRenderPartXML_PaletteNeverNamesAbilities(t *testing.T) {
	m := testMonster()
	m.CommonAbilities = "飛行,遠隔"
	m.Parts[0].SpecificAbilities = "再生＝5"

	got := renderOnly(t, m, 0)
	start := strings.Index(got, "<chat-palette")
	require.NotEqual(t, -1, start)
	palette := got[start:]

	assert.NotContains(t, palette, "飛行")
	assert.NotContains(t, palette, "再生")
}

func TestDocuments_Idempotent(t *testing.T) {
	m := treant()
	first, err := Documents(m)
	require.NoError(t, err)
	second, err := Documents(m)
	require.NoError(t, err)

	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].FileName, second[i].FileName)
		assert.Equal(t, first[i].XML, second[i].XML)
	}
}

func TestWriteArchive_MemberNames(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteArchive(&buf, []sw25.Monster{*treant()}))

	zr, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)

	var members []string
	for _, f := range zr.File {
		members = append(members, f.Name)
	}
	assert.Equal(t, []string{"Treant_Trunk.xml", "Treant_Root0.xml", "Treant_Root1.xml"}, members)
}

func TestWriteArchive_SinglePartMember(t *testing.T) {
	var buf bytes.Buffer
	m := testMonster()
	require.NoError(t, WriteArchive(&buf, []sw25.Monster{*m}))

	zr, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)
	require.Len(t, zr.File, 1)
	assert.Equal(t, "テストモンスター.xml", zr.File[0].Name)
}

func TestWriteArchive_EmptyListFails(t *testing.T) {
	var buf bytes.Buffer
	err := WriteArchive(&buf, nil)
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
}
