package hexagram

// #region imports
import (
	"fmt"
	"sort"
)

// #endregion

// #region canon

// canon lists the 64 hexagrams in King Wen order. Values are built from
// the trigram pair so the decomposition invariant holds by construction.
var canon = []Hexagram{
	{1, Recompose(Qian, Qian), "乾"},
	{2, Recompose(Kun, Kun), "坤"},
	{3, Recompose(Kan, Zhen), "屯"},
	{4, Recompose(Gen, Kan), "蒙"},
	{5, Recompose(Kan, Qian), "需"},
	{6, Recompose(Qian, Kan), "訟"},
	{7, Recompose(Kun, Kan), "師"},
	{8, Recompose(Kan, Kun), "比"},
	{9, Recompose(Xun, Qian), "小畜"},
	{10, Recompose(Qian, Dui), "履"},
	{11, Recompose(Kun, Qian), "泰"},
	{12, Recompose(Qian, Kun), "否"},
	{13, Recompose(Qian, Li), "同人"},
	{14, Recompose(Li, Qian), "大有"},
	{15, Recompose(Kun, Gen), "謙"},
	{16, Recompose(Zhen, Kun), "豫"},
	{17, Recompose(Dui, Zhen), "隨"},
	{18, Recompose(Gen, Xun), "蠱"},
	{19, Recompose(Kun, Dui), "臨"},
	{20, Recompose(Xun, Kun), "觀"},
	{21, Recompose(Li, Zhen), "噬嗑"},
	{22, Recompose(Gen, Li), "賁"},
	{23, Recompose(Gen, Kun), "剝"},
	{24, Recompose(Kun, Zhen), "復"},
	{25, Recompose(Qian, Zhen), "无妄"},
	{26, Recompose(Gen, Qian), "大畜"},
	{27, Recompose(Gen, Zhen), "頤"},
	{28, Recompose(Dui, Xun), "大過"},
	{29, Recompose(Kan, Kan), "坎"},
	{30, Recompose(Li, Li), "離"},
	{31, Recompose(Dui, Gen), "咸"},
	{32, Recompose(Zhen, Xun), "恆"},
	{33, Recompose(Qian, Gen), "遯"},
	{34, Recompose(Zhen, Qian), "大壯"},
	{35, Recompose(Li, Kun), "晉"},
	{36, Recompose(Kun, Li), "明夷"},
	{37, Recompose(Xun, Li), "家人"},
	{38, Recompose(Li, Dui), "睽"},
	{39, Recompose(Kan, Gen), "蹇"},
	{40, Recompose(Zhen, Kan), "解"},
	{41, Recompose(Gen, Dui), "損"},
	{42, Recompose(Xun, Zhen), "益"},
	{43, Recompose(Dui, Qian), "夬"},
	{44, Recompose(Qian, Xun), "姤"},
	{45, Recompose(Dui, Kun), "萃"},
	{46, Recompose(Kun, Xun), "升"},
	{47, Recompose(Dui, Kan), "困"},
	{48, Recompose(Kan, Xun), "井"},
	{49, Recompose(Dui, Li), "革"},
	{50, Recompose(Li, Xun), "鼎"},
	{51, Recompose(Zhen, Zhen), "震"},
	{52, Recompose(Gen, Gen), "艮"},
	{53, Recompose(Xun, Gen), "漸"},
	{54, Recompose(Zhen, Dui), "歸妹"},
	{55, Recompose(Zhen, Li), "豐"},
	{56, Recompose(Li, Gen), "旅"},
	{57, Recompose(Xun, Xun), "巽"},
	{58, Recompose(Dui, Dui), "兌"},
	{59, Recompose(Xun, Kan), "渙"},
	{60, Recompose(Kan, Dui), "節"},
	{61, Recompose(Xun, Dui), "中孚"},
	{62, Recompose(Zhen, Gen), "小過"},
	{63, Recompose(Kan, Li), "既濟"},
	{64, Recompose(Li, Kan), "未濟"},
}

var byNumber map[int]Hexagram
var byValue map[int]Hexagram

func init() {
	byNumber = make(map[int]Hexagram, len(canon))
	byValue = make(map[int]Hexagram, len(canon))
	for _, h := range canon {
		byNumber[h.Number] = h
		byValue[h.Value] = h
	}
}

// #endregion canon

// #region accessors

// All returns the 64 canonical hexagrams in King Wen order.
func All() []Hexagram {
	out := make([]Hexagram, len(canon))
	copy(out, canon)
	return out
}

// ByNumber looks up a hexagram by King Wen number.
func ByNumber(n int) (Hexagram, error) {
	h, ok := byNumber[n]
	if !ok {
		return Hexagram{}, fmt.Errorf("hexagram %d: %w", n, ErrInvalidNumber)
	}
	return h, nil
}

// ByValue looks up a hexagram by its 6-bit value.
func ByValue(v int) (Hexagram, error) {
	h, ok := byValue[v]
	if !ok {
		return Hexagram{}, fmt.Errorf("hexagram value %d: %w", v, ErrInvalidValue)
	}
	return h, nil
}

// ValidateCanon checks the static table for the invariants the rest of
// the system relies on: 64 entries, unique numbers and values, every
// value decomposing back into its trigram pair. A failure here is a
// construction defect and callers must refuse to start.
func ValidateCanon() error {
	if len(canon) != 64 {
		return fmt.Errorf("canon holds %d hexagrams, want 64", len(canon))
	}
	values := make([]int, 0, 64)
	for _, h := range canon {
		if h.Value < 0 || h.Value > 63 {
			return fmt.Errorf("hexagram %d: %w", h.Number, ErrInvalidValue)
		}
		upper, lower, err := Decompose(h.Value)
		if err != nil {
			return err
		}
		if Recompose(upper, lower) != h.Value {
			return fmt.Errorf("hexagram %d: decomposition does not round-trip", h.Number)
		}
		values = append(values, h.Value)
	}
	sort.Ints(values)
	for i := 1; i < len(values); i++ {
		if values[i] == values[i-1] {
			return fmt.Errorf("duplicate hexagram value %d", values[i])
		}
	}
	return nil
}

// #endregion accessors
