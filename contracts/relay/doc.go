/*
Package relay implements GAS Relay contract which pays for invocations of
registered contracts on behalf of their callers.

Callers don't need any GAS to use a registered contract. The administrator of
the Relay contract (the paymaster) sends transactions instead of them and
fronts execution fees. Each registered target contract has an owner, who
deposits GAS into the Relay contract beforehand. Every relayed call is charged
to the owner balance: the gas amount goes back to the paymaster and a fee,
computed from the current fee rate, stays in the contract until claimed.

Contract keeps its GAS in three purses. Relay purse receives incoming
transfers, deposit purse escrows owner balances and fee purse collects fees.
Sum of the purses always equals GAS balance of the contract, and sum of owner
balances never exceeds the deposit purse.

# Contract notifications

Register notification. This notification is produced when a target contract
is bound to its owner.

	Register:
	  - name: target
	    type: Hash160
	  - name: owner
	    type: Hash160

Deposit notification. This notification is produced when an owner balance is
credited.

	Deposit:
	  - name: owner
	    type: Hash160
	  - name: amount
	    type: Integer

CallOnBehalf notification. This notification is produced after a successful
relayed invocation. Token hash is reserved for payments in other tokens and is
always null.

	CallOnBehalf:
	  - name: target
	    type: Hash160
	  - name: owner
	    type: Hash160
	  - name: caller
	    type: Hash160
	  - name: method
	    type: String
	  - name: gasAmount
	    type: Integer
	  - name: tokenHash
	    type: Hash160
*/
package relay

/*
Contract storage model.

# Summary
Key-value storage format:
 - 'a' -> interop.Hash160
   administrator (paymaster) of the contract
 - 'r' -> int
   fee rate in parts per thousand of the gas amount
 - 'p', 'd', 'f' -> int
   relay, deposit and fee purses
 - 's' -> int
   sum of all owner balances
 - 't' + interop.Hash160 -> interop.Hash160
   owner of the registered target contract
 - 'o' + interop.Hash160 -> int
   owner balance

# Escrow
Owner balances are backed by the deposit purse. Relay purse holds GAS that is
not assigned to any owner yet.
*/
