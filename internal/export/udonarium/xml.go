package udonarium

import (
	"encoding/xml"
	"fmt"
	"strconv"

	"github.com/kazuyasi/trpg-json/internal/errors"
)

const xmlHeader = "<?xml version=\"1.0\" encoding=\"utf-8\"?>\n"

const dicebot = "SwordWorld2.5"

// chatPaletteText is identical for every part. Commands reference the
// status variables, never concrete values or abilities.
const chatPaletteText = `
//-----計算
C({HP}+{防護点}+{ダメージ軽減}-()) 　【残HP（物理ダメージ）】
C({HP}+{ダメージ軽減}-())　【残HP（魔法ダメージ）】
C({MP}-())　【MP消費】
C{HP}　【現在HP】
C{MP}　【現在MP】

//-----固定値判定
C({命中力}+7) 命中判定（固定値）
C({回避力}+7) 回避判定（固定値）
C({生命抵抗力}+7) 生命抵抗判定（固定値）
C({精神抵抗力}+7) 精神抵抗判定（固定値）

//-----ダイス判定
2d+{命中力}　命中判定
2d+{打撃点}　ダメージロール
2d+{回避力}　回避判定
2d+{生命抵抗力}　生命抵抗判定
2d+{精神抵抗力}　精神抵抗判定
`

type characterDoc struct {
	XMLName      xml.Name    `xml:"character"`
	LocationName string      `xml:"location.name,attr"`
	LocationX    int         `xml:"location.x,attr"`
	LocationY    int         `xml:"location.y,attr"`
	PosZ         int         `xml:"posZ,attr"`
	Rotate       int         `xml:"rotate,attr"`
	Roll         int         `xml:"roll,attr"`
	Data         dataNode    `xml:"data"`
	ChatPalette  paletteNode `xml:"chat-palette"`
}

type dataNode struct {
	Type         string     `xml:"type,attr,omitempty"`
	Name         string     `xml:"name,attr"`
	CurrentValue string     `xml:"currentValue,attr,omitempty"`
	Text         string     `xml:",chardata"`
	Children     []dataNode `xml:"data"`
}

type paletteNode struct {
	DiceBot string `xml:"dicebot,attr"`
	Text    string `xml:",chardata"`
}

// renderPartXML produces the full XML document for one part. Core
// parts carry the preparedness, info, and knowledge sections on top of
// the sections every part gets.
func renderPartXML(m *renderedMonster, idx int) ([]byte, error) {
	if idx < 0 || idx >= len(m.Parts) {
		return nil, errors.Internalf("part index %d out of range for %q", idx, m.Name)
	}
	p := &m.Parts[idx]

	detail := []dataNode{
		resourceSection(p),
		statusSection(p),
		abilitySection(m, p),
	}
	if p.IsCore {
		detail = append(detail,
			dataNode{Name: "戦闘準備", Children: []dataNode{{
				Type: "note",
				Name: "魔物知識・先制判定",
				Text: fmt.Sprintf("%d/%d\n%d", m.Fame, p.WeaknessValue, m.Initiative),
			}}},
			dataNode{Name: "情報", Children: []dataNode{{
				Type: "note",
				Name: "弱点",
				Text: TransformWeakness(p.Weakness),
			}}},
			dataNode{Name: "魔物知識", Children: []dataNode{{
				Type: "note",
				Name: "生態",
				Text: fmt.Sprintf("%s Lv.%d", m.Category, m.Level),
			}}},
		)
	}

	doc := characterDoc{
		LocationName: "table",
		Data: dataNode{
			Name: "character",
			Children: []dataNode{
				{Name: "image", Children: []dataNode{
					{Type: "image", Name: "imageIdentifier"},
				}},
				{Name: "common", Children: []dataNode{
					{Name: "name", Text: p.DisplayName},
					{Name: "size", Text: "1"},
				}},
				{Name: "detail", Children: detail},
			},
		},
		ChatPalette: paletteNode{DiceBot: dicebot, Text: chatPaletteText},
	}

	body, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodePackagingFailed,
			fmt.Sprintf("serializing part %q of %q", p.DisplayName, m.Name))
	}
	return append([]byte(xmlHeader), body...), nil
}

func resourceSection(p *renderedPart) dataNode {
	return dataNode{Name: "リソース", Children: []dataNode{
		numberResource("HP", p.HP),
		numberResource("MP", p.MP),
		numberResource("防護点", p.Armor),
	}}
}

func statusSection(p *renderedPart) dataNode {
	return dataNode{Name: "ステータス・バフ・デバフ", Children: []dataNode{
		numberField("命中力", AdjustValue(p.HitRate)),
		numberField("打撃点", p.Damage),
		numberField("回避力", AdjustValue(p.Dodge)),
		numberField("生命抵抗力", AdjustValue(p.LifeResistance)),
		numberField("精神抵抗力", AdjustValue(p.MentalResistance)),
	}}
}

func abilitySection(m *renderedMonster, p *renderedPart) dataNode {
	return dataNode{Name: "特殊能力", Children: []dataNode{
		{Type: "note", Name: "特殊能力1", Text: m.CommonAbilities},
		{Type: "note", Name: "特殊能力2", Text: p.SpecificAbilities},
	}}
}

func numberResource(name string, v int) dataNode {
	s := strconv.Itoa(v)
	return dataNode{Type: "numberResource", Name: name, CurrentValue: s, Text: s}
}

func numberField(name string, v int) dataNode {
	return dataNode{Type: "number", Name: name, Text: strconv.Itoa(v)}
}
