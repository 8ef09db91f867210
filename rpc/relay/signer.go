package relay

import (
	"github.com/nspcc-dev/neo-go/pkg/core/transaction"
	"github.com/nspcc-dev/neo-go/pkg/util"
)

// PaymasterSigner returns transaction signer of the Relay administrator. The
// witness is valid only in the contract called by the transaction script, so
// target contracts invoked through CallOnBehalf can't spend the administrator
// funds.
func PaymasterSigner(acc util.Uint160) transaction.Signer {
	return transaction.Signer{
		Account: acc,
		Scopes:  transaction.CalledByEntry,
	}
}
