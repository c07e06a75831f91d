/*
Package asn1schema parses ASN.1 schema text, compiles the named types
it declares into executable codec objects, and performs byte-exact
encoding and decoding of values under the Basic Encoding Rules (BER)
of X.690.

Use [Compile] to turn schema source into a [*Specification], then call
[Specification.Encode] and [Specification.Decode] against the type
names the schema declared.

Only BER is implemented; DER, CER and the packed encoding rules are
out of scope. Only the subset of ASN.1 types named in the package's
supported grammar is recognized: INTEGER, BOOLEAN, OCTET STRING,
NULL, ENUMERATED, SEQUENCE, SEQUENCE OF and CHOICE.
*/
package asn1schema
