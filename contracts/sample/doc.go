/*
Package sample implements Sample contract which shows how a contract accepts
calls relayed by the GAS Relay contract.

Relay contract passes the original caller as the last argument of the invoked
method. Sample contract trusts this argument only when it comes from one of
the trusted forwarders set at deployment. Direct invocations must be witnessed
by the caller they claim.

# Contract notifications

MessageSet notification. This notification is produced when a new message is
stored.

	MessageSet:
	  - name: caller
	    type: Hash160
	  - name: message
	    type: String
*/
package sample

/*
Contract storage model.

# Summary
Key-value storage format:
 - 'm' -> string
   last stored message
 - 'c' -> interop.Hash160
   author of the last stored message
 - 'F' + interop.Hash160 -> []byte{1}
   trusted forwarder allow-list
*/
