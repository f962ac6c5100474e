// Package codename 產生裝備代號、描述、任務成功率與自毀確認碼。
// 所有函式除了使用亂數來源之外皆無副作用；亂數來源可注入以便測試。
package codename

import (
	crand "crypto/rand"
	"fmt"
	"math/rand/v2"
	"sync"

	"imf-gadget-api/internal/model"
)

const (
	MinProbability = 45
	MaxProbability = 98

	codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	codeLength   = 8
)

// Generator 以單一亂數來源產生各種隨機值，可同時被多個 goroutine 使用
type Generator struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// New 以指定來源建立 Generator；src 為 nil 時使用以 crypto/rand 播種的 ChaCha8
func New(src rand.Source) *Generator {
	if src == nil {
		var seed [32]byte
		if _, err := crand.Read(seed[:]); err != nil {
			panic(fmt.Sprintf("codename: seed random source: %v", err))
		}
		src = rand.NewChaCha8(seed)
	}
	return &Generator{rnd: rand.New(src)}
}

func (g *Generator) intN(n int) int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.rnd.IntN(n)
}

func (g *Generator) pick(words []string) string {
	return words[g.intN(len(words))]
}

// Codename 產生 "The <形容詞> <顏色> <動物>"，不保證唯一
func (g *Generator) Codename() string {
	return fmt.Sprintf("The %s %s %s", g.pick(adjectives), g.pick(colors), g.pick(animals))
}

// AlternativeCodename 隨機挑選主題後，由該主題的前兩個字表組成 "The <word> <word>"
func (g *Generator) AlternativeCodename() string {
	t := themes[g.intN(len(themes))]
	return fmt.Sprintf("The %s %s", g.pick(t[0]), g.pick(t[1]))
}

// MissionSuccessProbability 回傳 [45, 98] 之間的整數
func (g *Generator) MissionSuccessProbability() int {
	return MinProbability + g.intN(MaxProbability-MinProbability+1)
}

// SelfDestructCode 產生 XXXX-XXXX 格式的確認碼
func (g *Generator) SelfDestructCode() string {
	buf := make([]byte, 0, codeLength+1)
	for i := 0; i < codeLength; i++ {
		if i == codeLength/2 {
			buf = append(buf, '-')
		}
		buf = append(buf, codeAlphabet[g.intN(len(codeAlphabet))])
	}
	return string(buf)
}

// Description 依代號產生一段裝備描述
func (g *Generator) Description(codename string) string {
	return fmt.Sprintf(g.pick(descriptionTemplates), codename)
}

// CanSelfDestruct 僅 Available 與 Deployed 可啟動自毀
func CanSelfDestruct(status model.GadgetStatus) bool {
	for _, s := range model.SelfDestructStatuses() {
		if status == s {
			return true
		}
	}
	return false
}
