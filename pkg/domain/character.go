package domain

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"os"
)

// 年齢の許容範囲。絵本の対象読者層に合わせた製品仕様なのだ。
const (
	MinAge = 2
	MaxAge = 12
)

// Gender は主人公の性別を表す閉じた列挙型です。
type Gender string

const (
	GenderBoy  Gender = "boy"
	GenderGirl Gender = "girl"
)

// Valid は値が列挙の範囲内かどうかを返します。
func (g Gender) Valid() bool {
	return g == GenderBoy || g == GenderGirl
}

// Pronoun は英語プロンプトの文中で使う主格代名詞を返します。
// 不正な値でも文が壊れないように "they" へフォールバックするのだ。
func (g Gender) Pronoun() string {
	switch g {
	case GenderBoy:
		return "he"
	case GenderGirl:
		return "she"
	default:
		return "they"
	}
}

// CharacterIdentity は物語全体を通して視覚的一貫性を保つべき主人公の定義を保持します。
// 1つの物語の全チャプターで同一のインスタンスを読み取り専用で使い回します。
type CharacterIdentity struct {
	Name         string `json:"name"`
	Age          int    `json:"age"`
	Gender       Gender `json:"gender"`
	ReferenceURL string `json:"reference_url,omitempty"` // 一貫性保持のための参照写真URL
	Seed         int64  `json:"seed,omitempty"`          // 画像生成側でDNA固定に使うシード値
}

// String はキャラクターの情報を文字列で返すのだ。
func (c CharacterIdentity) String() string {
	return fmt.Sprintf("%s (%d-year-old %s)", c.Name, c.Age, c.Gender)
}

// EffectiveSeed は設定済みのシード値、未設定なら名前から導出した値を返します。
func (c CharacterIdentity) EffectiveSeed() int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return int64(GetSeedFromName(c.Name))
}

// GetSeedFromName は名前から決定論的なシード値を生成します。
// 明示的なシード指定がない場合でも、名前が同じなら常に同じシードが使われます。
func GetSeedFromName(name string) int32 {
	hash := sha256.Sum256([]byte(name))
	// ハッシュの最初の4バイトを int32 に変換
	seed := int32(binary.BigEndian.Uint32(hash[:4]))
	// 画像生成側のシード値は正の数が望ましいため、最上位ビットを落とすのが安全なのだ
	return seed & 0x7FFFFFFF
}

// GetCharacter はJSONバイト列から主人公の定義をパースして返します。
// この関数はステートレスであり、キャッシュを行いません。
func GetCharacter(data []byte) (CharacterIdentity, error) {
	var c CharacterIdentity
	if err := json.Unmarshal(data, &c); err != nil {
		return CharacterIdentity{}, fmt.Errorf("キャラクター情報のJSONパースに失敗しました: %w", err)
	}
	return c, nil
}

// LoadCharacter は指定されたファイルパスからJSONを読み込み、主人公の定義を返すのだ。
func LoadCharacter(path string) (CharacterIdentity, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return CharacterIdentity{}, fmt.Errorf("キャラクターファイルの読み込みに失敗したのだ: %w", err)
	}
	return GetCharacter(data)
}
