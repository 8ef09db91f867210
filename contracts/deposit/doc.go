/*
Package deposit implements Deposit contract which tops up owner balances in the
GAS Relay contract.

Relay contract credits an owner with everything accumulated in its relay purse.
When GAS transfer and `deposit` call are made in separate transactions, another
deposit may slip in between them and take the funds. Deposit contract makes
both steps within a single invocation.

# Contract notifications

Deposit contract does not produce notifications to process. Relay contract
produces Deposit notification for every successful call.
*/
package deposit

/*
Contract storage model.

At the moment, no data is stored in the contract.
*/
