package section

// container layout
const (
	// SymbolCount is the size of the byte alphabet.
	SymbolCount = 256

	// TotalSymbolsSize is the width of the symbol count field.
	TotalSymbolsSize = 4

	// FrequencyFieldSize is the width of one frequency entry.
	FrequencyFieldSize = 4

	TotalSymbolsOffset = 0
	FrequenciesOffset  = TotalSymbolsOffset + TotalSymbolsSize
	HeaderSize         = FrequenciesOffset + SymbolCount*FrequencyFieldSize // 1028 bytes
	BitstreamOffset    = HeaderSize
)
