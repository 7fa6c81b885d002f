package game

import "math/rand/v2"

// WordPair is one dial's two endpoint labels.
type WordPair struct {
	Left  string
	Right string
}

// batteryPairs is the built-in adjective list used in battery mode.
var batteryPairs = []WordPair{
	{"Frío", "Caliente"},
	{"Pequeño", "Grande"},
	{"Lento", "Rápido"},
	{"Barato", "Caro"},
	{"Feo", "Bonito"},
	{"Débil", "Fuerte"},
	{"Aburrido", "Divertido"},
	{"Suave", "Áspero"},
	{"Dulce", "Amargo"},
	{"Antiguo", "Moderno"},
	{"Silencioso", "Ruidoso"},
	{"Ligero", "Pesado"},
	{"Oscuro", "Luminoso"},
	{"Seco", "Húmedo"},
	{"Simple", "Complejo"},
	{"Común", "Raro"},
	{"Sano", "Tóxico"},
	{"Cobarde", "Valiente"},
	{"Triste", "Alegre"},
	{"Inútil", "Útil"},
	{"Sucio", "Limpio"},
	{"Vacío", "Lleno"},
	{"Flexible", "Rígido"},
	{"Amable", "Cruel"},
	{"Natural", "Artificial"},
	{"Ordenado", "Caótico"},
	{"Humilde", "Arrogante"},
	{"Temporal", "Eterno"},
	{"Blando", "Duro"},
	{"Cercano", "Lejano"},
	{"Legal", "Ilegal"},
	{"Serio", "Gracioso"},
	{"Famoso", "Desconocido"},
	{"Tranquilo", "Estresante"},
	{"Formal", "Informal"},
	{"Predecible", "Sorprendente"},
}

// PairPool hands out adjective pairs without repetition until every
// pair has been used, then refills and reshuffles so all pairs become
// available again.
type PairPool struct {
	rng       *rand.Rand
	remaining []WordPair
}

func NewPairPool(rng *rand.Rand) *PairPool {
	return &PairPool{rng: rng}
}

// Draw returns the next unused pair, refilling the pool once exhausted.
func (p *PairPool) Draw() WordPair {
	if len(p.remaining) == 0 {
		p.refill()
	}
	pair := p.remaining[len(p.remaining)-1]
	p.remaining = p.remaining[:len(p.remaining)-1]
	return pair
}

// Remaining reports how many pairs are left before the next refill.
func (p *PairPool) Remaining() int {
	return len(p.remaining)
}

func (p *PairPool) refill() {
	p.remaining = make([]WordPair, len(batteryPairs))
	copy(p.remaining, batteryPairs)
	p.rng.Shuffle(len(p.remaining), func(i, j int) {
		p.remaining[i], p.remaining[j] = p.remaining[j], p.remaining[i]
	})
}
