/*
Package ddb reads seed records from a DynamoDB single-table design.

Every kind lives in its own partition, selected by expanding the partition
template with the kind name:

	PK = "KIND#movie"   SK = "m1"   id = "m1"   director = "Nolan"

Items are decoded with json struct tags. Key attributes that have no matching
field are ignored.
*/
package ddb
