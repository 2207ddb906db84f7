// Package section parses the fixed wire structures that frame a FIT byte
// stream: the file header, the one-byte message headers, and definition
// message bodies. It stops below semantics; interpreting field values
// against the profile catalogue is the decode package's job.
package section
