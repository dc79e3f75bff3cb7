package scripts

import (
	"github.com/tranvictor/lottery/networks"
	"github.com/tranvictor/lottery/util/account"
)

// AccountOptions picks an account explicitly. Index wins over ID.
type AccountOptions struct {
	Index *int
	ID    string
}

func WithIndex(i int) AccountOptions {
	return AccountOptions{Index: &i}
}

func WithID(id string) AccountOptions {
	return AccountOptions{ID: id}
}

// GetAccount returns the account scripts sign with. Without options that is
// the first default account on local and forked networks and the
// wallets.from_key account everywhere else.
func (h *Helper) GetAccount(opts ...AccountOptions) (*account.Account, error) {
	opt := AccountOptions{}
	if len(opts) > 0 {
		opt = opts[0]
	}
	if opt.Index != nil {
		return h.book.At(*opt.Index)
	}
	if opt.ID != "" {
		return h.book.Load(opt.ID)
	}
	if networks.IsLocalOrForked(h.network) {
		return h.book.At(0)
	}
	key, err := h.project.FromKey()
	if err != nil {
		return nil, err
	}
	return h.book.Add(key)
}
