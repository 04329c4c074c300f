// Package burnzip provides a Go client SDK for BurnZip, a zero-knowledge
// tool for sharing short-lived secrets.
//
// Content is encrypted on the sender's machine with a key stretched from a
// ten character secret; the encrypted package travels inside the share
// link's URL fragment, which user agents never transmit, or through an
// untrusted blob store when it is too large to embed. Whoever runs the
// infrastructure sees only ciphertext.
//
// Basic usage:
//
//	client, err := burnzip.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Seal a message behind a secret
//	share := client.NewShare()
//	share.Compose(burnzip.ShareModeMessage)
//	share.SetSecret("ABCD123456")
//	share.SetMessage("the wifi password is hunter2")
//	if err := share.Seal(ctx); err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println("Send this link:", share.Link())
//
//	// On the other side
//	session, err := client.Open(ctx, burnzip.EmbeddedLocator(link))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	payload, err := session.Unlock(ctx, "ABCD123456")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println(payload.Text())
package burnzip
