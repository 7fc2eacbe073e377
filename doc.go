// Package huffman implements a Huffman coding engine for text.  It counts
// symbol frequencies, builds the prefix-code tree, derives the code table,
// and measures how many bits the coded text would take.  It does not pack
// or unpack bitstreams.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
package huffman
