package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/davecgh/go-spew/spew"

	"github.com/Liziwinc/web-larek-frontend/internal/api"
	"github.com/Liziwinc/web-larek-frontend/internal/app"
	"github.com/Liziwinc/web-larek-frontend/internal/domain"
	"github.com/Liziwinc/web-larek-frontend/internal/events"
	httpapi "github.com/Liziwinc/web-larek-frontend/internal/http"
	"github.com/Liziwinc/web-larek-frontend/internal/repository"
	"github.com/Liziwinc/web-larek-frontend/internal/service"

	_ "github.com/Liziwinc/web-larek-frontend/docs"
)

func price(v float64) *float64 { return &v }

// seedCatalog демонстрационный каталог ларька
func seedCatalog() []domain.Product {
	return []domain.Product{
		{ID: "854cef69-976d-4c2a-a18c-2aa45046c390", Title: "+1 час в сутках", Category: "софт-скил", Image: "/5_Dots.svg", Price: price(750)},
		{ID: "c101ab44-ed99-4a54-990d-47aa2bb4e7d9", Title: "HEX-леденец", Category: "другое", Image: "/Shell.svg", Price: price(1450)},
		{ID: "b06cde61-912f-4663-9751-09956c0eed67", Title: "Мамка-таймер", Category: "софт-скил", Image: "/Asterisk_2.svg", Price: nil},
		{ID: "412bcf81-7e75-4e70-bdb9-d3c73c9803b7", Title: "Фреймворк куки судьбы", Category: "дополнительное", Image: "/Soft_Flower.svg", Price: price(2500)},
		{ID: "1c521d84-c48d-48fa-8cfb-9d911fa515fd", Title: "Кнопка «Замьютить кота»", Category: "кнопка", Image: "/Mute_Cat.svg", Price: price(2000)},
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func main() {
	addr := getenv("SHOP_ADDR", ":9091")
	cdn := getenv("CDN_URL", "https://larek.app/content/weblarek")

	store := repository.NewMemoryStore()
	if err := store.ReplaceAll(context.Background(), seedCatalog()); err != nil {
		log.Fatalf("seed catalog: %v", err)
	}
	shop := service.NewShopService(store, repository.NewMemoryOrders(store))
	srv := httpapi.NewServer(shop)

	httpServer := &http.Server{
		Addr:    addr,
		Handler: srv.Engine(),
	}

	go func() {
		log.Printf("shop API listening on %s", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Сессия оформления против собственного стенда: wildcard-подписчик
	// печатает каждое событие ядра.
	client := api.NewClient("http://localhost"+addr+"/api/v1", cdn, &http.Client{Timeout: 10 * time.Second})
	session := app.NewSession(client)
	session.Bus.Subscribe(events.Wildcard, func(payload any) {
		ev, ok := payload.(events.Event)
		if !ok {
			return
		}
		log.Printf("event %s: %s", ev.Name, spew.Sdump(ev.Payload))
	})

	// сервер мог ещё не начать слушать; повтор загрузки безопасен
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	for attempt := 1; ; attempt++ {
		err := session.LoadCatalog(ctx)
		if err == nil {
			break
		}
		if attempt == 5 {
			log.Printf("catalog load failed: %v", err)
			break
		}
		time.Sleep(200 * time.Millisecond)
	}
	cancel()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown error: %v", err)
	}
}
