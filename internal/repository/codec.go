package repository

import (
	"errors"
	"slices"

	"github.com/bytedance/sonic"

	"github.com/limbo/nestling/pkg/entity"
)

// Badge and achievement columns were written by older clients either as plain
// id arrays or as arrays of {"id": ...} objects. Both decode to plain ids here,
// deduplicated, in stored order.
func decodeIDList(raw []byte) ([]string, error) {
	if len(raw) == 0 {
		return []string{}, nil
	}
	var items []any
	if err := sonic.Unmarshal(raw, &items); err != nil {
		return nil, errors.New("decoding id list error: " + err.Error())
	}
	ids := make([]string, 0, len(items))
	for _, it := range items {
		var id string
		switch v := it.(type) {
		case string:
			id = v
		case map[string]any:
			id, _ = v["id"].(string)
		}
		if id == "" || slices.Contains(ids, id) {
			continue
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func decodeBadges(raw []byte) ([]entity.BadgeID, error) {
	ids, err := decodeIDList(raw)
	if err != nil {
		return nil, err
	}
	res := make([]entity.BadgeID, 0, len(ids))
	for _, id := range ids {
		res = append(res, entity.BadgeID(id))
	}
	return res, nil
}

func decodeAchievements(raw []byte) ([]entity.AchievementID, error) {
	ids, err := decodeIDList(raw)
	if err != nil {
		return nil, err
	}
	res := make([]entity.AchievementID, 0, len(ids))
	for _, id := range ids {
		res = append(res, entity.AchievementID(id))
	}
	return res, nil
}

func decodeCounterMap(raw []byte) (map[string]int, error) {
	res := map[string]int{}
	if len(raw) == 0 {
		return res, nil
	}
	if err := sonic.Unmarshal(raw, &res); err != nil {
		return nil, errors.New("decoding counter map error: " + err.Error())
	}
	if res == nil {
		res = map[string]int{}
	}
	return res, nil
}

func encodeJSON(v any) (string, error) {
	s, err := sonic.MarshalString(v)
	if err != nil {
		return "", errors.New("encoding json error: " + err.Error())
	}
	return s, nil
}
