package main

import (
	"flag"
	"io/fs"
	"log"
	"net"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/milk9111/ny1609/public"
	"github.com/milk9111/ny1609/server"
	"github.com/pkg/browser"
)

const defaultPort = "8080"

func main() {
	addr := flag.String("addr", "", "listen address (default :$PORT, or :8080)")
	dir := flag.String("dir", "", "serve this directory instead of the embedded pages")
	open := flag.Bool("open", false, "open the landing page in a browser")
	flag.Parse()

	// a missing .env is fine; the real environment still applies
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("server: .env: %v", err)
	}

	listen := *addr
	if listen == "" {
		port := os.Getenv("PORT")
		if port == "" {
			port = defaultPort
		}
		listen = ":" + port
	}

	var root fs.FS = public.FS
	if *dir != "" {
		root = os.DirFS(*dir)
	}

	ln, err := net.Listen("tcp", listen)
	if err != nil {
		log.Fatal(err)
	}
	url := "http://" + localURL(ln.Addr())
	log.Printf("server: NY1609 running on %s", url)

	if *open {
		if err := browser.OpenURL(url); err != nil {
			log.Printf("server: open browser: %v", err)
		}
	}

	log.Fatal(http.Serve(ln, server.New(root)))
}

// localURL turns a wildcard listen address into one a browser can reach.
func localURL(addr net.Addr) string {
	host, port, err := net.SplitHostPort(addr.String())
	if err != nil {
		return addr.String()
	}
	if ip := net.ParseIP(host); host == "" || (ip != nil && ip.IsUnspecified()) {
		host = "localhost"
	}
	return net.JoinHostPort(host, port)
}
