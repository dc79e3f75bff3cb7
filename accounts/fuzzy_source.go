package accounts

import (
	"fmt"
)

type FuzzySource []KeystoreDesc

func (self FuzzySource) Len() int {
	return len(self)
}

func (self FuzzySource) String(i int) string {
	return fmt.Sprintf("%s_%s", self[i].ID, self[i].Address)
}

func NewFuzzySource(dir string) FuzzySource {
	return FuzzySource(ListKeystores(dir))
}
