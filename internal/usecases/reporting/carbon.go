package reporting

// Modelo heurístico de ocupação e energia das mesas: cada transação vira uma
// ou mais "aberturas" de mesa pequena (4 lugares) ou grande (6 lugares), e a
// energia é estimada por abertura. É uma estimativa de negócio, não uma
// medição — as fórmulas devem ser reproduzidas exatamente.
const (
	smallTableCapacity = 4
	largeTableCapacity = 6

	smallTableWatt    = 30
	largeTableWatt    = 50
	minutesPerSeating = 120
)

type carbonTally struct {
	smallSeatings int
	smallGuests   int
	largeSeatings int
	largeGuests   int
}

// add classifica uma transação pelo tamanho do grupo (NumOfCustomers)
func (ct *carbonTally) add(partySize int) {
	switch {
	case partySize <= 0:
		return
	case partySize <= 4:
		ct.smallSeatings++
		ct.smallGuests += partySize
	case partySize <= 6:
		ct.largeSeatings++
		ct.largeGuests += partySize
	case partySize <= 8:
		// Grupos de 7-8 são acomodados em duas mesas pequenas
		ct.smallSeatings += 2
		ct.smallGuests += partySize
	default:
		full := partySize / largeTableCapacity
		ct.largeSeatings += full
		ct.largeGuests += full * largeTableCapacity

		rest := partySize % largeTableCapacity
		if rest > 0 {
			if rest > smallTableCapacity {
				ct.largeSeatings++
				ct.largeGuests += rest
			} else {
				ct.smallSeatings++
				ct.smallGuests += rest
			}
		}
	}
}

type carbonTotals struct {
	TotalSCE   int
	AvgSCE     int
	UseRateSCE float64 // percentual, já multiplicado por 100
	TotalDCE   int
	AvgDCE     int
	UseRateDCE float64
}

func (ct *carbonTally) totals() carbonTotals {
	totals := carbonTotals{
		TotalSCE: smallTableWatt * ct.smallSeatings * minutesPerSeating,
		TotalDCE: largeTableWatt * ct.largeSeatings * minutesPerSeating,
	}

	if ct.smallGuests > 0 {
		totals.AvgSCE = totals.TotalSCE / ct.smallGuests
	}
	if ct.largeGuests > 0 {
		totals.AvgDCE = totals.TotalDCE / ct.largeGuests
	}

	if ct.smallSeatings > 0 {
		totals.UseRateSCE = float64(ct.smallGuests) / float64(ct.smallSeatings*smallTableCapacity) * 100
	}
	if ct.largeSeatings > 0 {
		totals.UseRateDCE = float64(ct.largeGuests) / float64(ct.largeSeatings*largeTableCapacity) * 100
	}

	return totals
}
