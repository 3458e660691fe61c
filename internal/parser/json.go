package parser

import (
	"errors"
	"fmt"

	"github.com/tidwall/gjson"
)

func decodeJSON(data []byte) (*document, error) {
	if !gjson.ValidBytes(data) {
		return nil, errors.New("invalid json")
	}
	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return nil, errors.New("chart is not an object")
	}

	doc := document{
		Name:     root.Get("name").String(),
		Filename: root.Get("filename").String(),
	}

	arrows := root.Get("arrows")
	if !arrows.Exists() {
		return &doc, nil
	}
	if !arrows.IsArray() {
		return nil, errors.New("arrows is not a list")
	}

	var err error
	i := 0
	arrows.ForEach(func(_, value gjson.Result) bool {
		for _, key := range requiredArrowFields {
			if !value.Get(key).Exists() {
				err = fmt.Errorf("arrow %v: %v is missing", i, key)
				return false
			}
		}
		clickTime := value.Get("click_time")
		if clickTime.Type != gjson.Number {
			err = fmt.Errorf("arrow %v: click_time is not a number", i)
			return false
		}
		i++
		doc.Arrows = append(doc.Arrows, arrow{
			ClickTime: clickTime.Float(),
			Speed:     value.Get("speed").String(),
			Direction: value.Get("direction").String(),
		})
		return true
	})
	if nil != err {
		return nil, err
	}
	return &doc, nil
}
