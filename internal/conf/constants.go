package conf

import "math/bits"

// DefaultMaxLoadFactor - Max load factor given to a new index if none is configured
const DefaultMaxLoadFactor float64 = 1.0

// DefaultShrinkLoadMargin - A rehash that does not grow the table is only performed if the resulting load factor
// is below max load factor minus this margin
const DefaultShrinkLoadMargin float64 = 0.25

// DefaultShrinkSizeRatio - A rehash that does not grow the table is only performed if the new bucket count is below
// the current bucket count times this ratio
const DefaultShrinkSizeRatio float64 = 0.75

// primes64 - Ascending bucket counts, each roughly 1.5 times the previous, ending at the largest 64-bit prime
var primes64 = []uint64{
	101, 173, 263, 397, 599, 907, 1361, 2053, 3083,
	4637, 6959, 10453, 15683, 23531, 35311, 52967, 79451,
	119179, 178781, 268189, 402299, 603457, 905189, 1357787,
	2036687, 3055043, 4582577, 6873871, 10310819, 15466229,
	23199347, 34799021, 52198537, 78297827, 117446801, 176170229,
	264255353, 396383041, 594574583, 891861923, 1337792887,
	2006689337, 3010034021, 4515051137, 6772576709, 10158865069,
	15238297621, 22857446471, 34286169707, 51429254599, 77143881917,
	115715822899, 173573734363, 260360601547, 390540902329,
	585811353559, 878717030339, 1318075545511, 1977113318311,
	2965669977497, 4448504966249, 6672757449409, 10009136174239,
	15013704261371, 22520556392057, 33780834588157, 50671251882247,
	76006877823377, 114010316735089, 171015475102649, 256523212653977,
	384784818980971, 577177228471507, 865765842707309, 1298648764060979,
	1947973146091477, 2921959719137273, 4382939578705967, 6574409368058969,
	9861614052088471, 14792421078132871, 22188631617199337, 33282947425799017,
	49924421138698549, 74886631708047827, 112329947562071807, 168494921343107851,
	252742382014661767, 379113573021992729, 568670359532989111, 853005539299483657,
	1279508308949225477, 1919262463423838231, 2878893695135757317, 4318340542703636011,
	6477510814055453699, 9716266221083181299, 14574399331624771603, 18446744073709551557,
}

// largestPrime32 - Largest prime that fits in 32 bits
const largestPrime32 uint64 = 4294967291

// Primes - Returns a fresh copy of the prime table suited for the platform word size.
// On 64-bit platforms all 99 entries are returned, on 32-bit platforms the table stops at 4294967291.
func Primes() (primes []uint64) {
	if bits.UintSize == 64 {
		primes = make([]uint64, len(primes64))
		copy(primes, primes64)
		return
	}

	for _, p := range primes64 {
		if p >= largestPrime32 {
			break
		}
		primes = append(primes, p)
	}
	primes = append(primes, largestPrime32)

	return
}
