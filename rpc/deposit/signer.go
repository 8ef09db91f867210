package deposit

import (
	"github.com/nspcc-dev/neo-go/pkg/core/transaction"
	"github.com/nspcc-dev/neo-go/pkg/util"
)

// DepositorSigner returns transaction signer of the account depositing GAS
// through the Deposit contract with the given hash. The witness is valid in
// the contract called by the transaction script and in contracts called by the
// Deposit contract (native GAS transfer).
func DepositorSigner(acc, helper util.Uint160) transaction.Signer {
	byHelper := transaction.ConditionCalledByContract(helper)

	return transaction.Signer{
		Account: acc,
		Scopes:  transaction.Rules,
		Rules: []transaction.WitnessRule{{
			Action: transaction.WitnessAllow,
			Condition: &transaction.ConditionOr{
				transaction.ConditionCalledByEntry{},
				&byHelper,
			},
		}},
	}
}
