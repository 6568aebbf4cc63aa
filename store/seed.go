package store

import "sfera/domain"

// DemoSeed returns the fixed seed state the demo starts from. Every run
// rebuilds the same three users, three posts and three dialogs; nothing is
// persisted between sessions.
func DemoSeed() Seed {
	return Seed{
		Current: domain.User{
			ID:       domain.LocalUserID,
			Name:     "Вы",
			Username: "me",
			Bio:      "Расскажите о себе...",
		},
		Directory: []domain.User{
			{
				ID: "1", Name: "Алексей Громов", Username: "alexgromov",
				Bio:       "Дизайнер продуктов. Люблю минимализм и кофе.",
				Followers: 1240, Following: 389,
			},
			{
				ID: "2", Name: "Мария Сова", Username: "mariasova",
				Bio:       "Фотограф и путешественник.",
				Followers: 3421, Following: 102,
			},
			{
				ID: "3", Name: "Иван Петров", Username: "ivanpetrov",
				Bio:       "Разработчик, любитель Open Source.",
				Followers: 876, Following: 450,
			},
		},
		Posts: []domain.Post{
			{
				ID: "p1", AuthorID: "2", AuthorName: "Мария Сова", AuthorUsername: "mariasova",
				Text:         "Снял сегодня закат в Питере — небо было просто нереальным. Иногда важно остановиться и посмотреть вокруг.",
				CreatedLabel: "2 мин назад",
				Likes:        48,
				Comments: []domain.Comment{
					{ID: "c1", AuthorID: "3", AuthorName: "Иван Петров", Text: "Потрясающе! Где именно снял?", Likes: 5},
					{ID: "c2", AuthorID: "1", AuthorName: "Алексей Громов", Text: "Питер всегда красив в золотой час.", Likes: 3},
				},
			},
			{
				ID: "p2", AuthorID: "1", AuthorName: "Алексей Громов", AuthorUsername: "alexgromov",
				Text:         "Работаю над новой дизайн-системой. Минимализм — это не отсутствие элементов, это присутствие только нужных.",
				CreatedLabel: "1 ч назад",
				Likes:        134,
				Comments: []domain.Comment{
					{ID: "c3", AuthorID: "2", AuthorName: "Мария Сова", Text: "Согласна на 100%. Меньше — это больше.", Likes: 12},
				},
			},
			{
				ID: "p3", AuthorID: "3", AuthorName: "Иван Петров", AuthorUsername: "ivanpetrov",
				Text:         "Запустил open source проект — инструмент для анализа зависимостей в монорепозиториях. Буду рад звёздочкам и фидбэку!",
				CreatedLabel: "3 ч назад",
				Likes:        89,
			},
		},
		Dialogs: []domain.Dialog{
			{
				ID: "d1", PeerName: "Мария Сова",
				Preview: "Видел мой последний пост?", LastTime: "14:32", Unread: 2,
				Messages: []domain.ChatMessage{
					{ID: "dm1", Text: "Привет!", TimeLabel: "14:30"},
					{ID: "dm2", Text: "Видел мой последний пост?", TimeLabel: "14:32"},
				},
			},
			{
				ID: "d2", PeerName: "Иван Петров",
				Preview: "Спасибо за фидбэк по проекту!", LastTime: "12:05",
				Messages: []domain.ChatMessage{
					{ID: "dm3", FromMe: true, Text: "Посмотрел твой проект — очень круто!", TimeLabel: "11:58"},
					{ID: "dm4", Text: "Спасибо за фидбэк по проекту!", TimeLabel: "12:05"},
				},
			},
			{
				ID: "d3", PeerName: "Алексей Громов",
				Preview: "Как дела? Давно не общались.", LastTime: "Вчера", Unread: 1,
				Messages: []domain.ChatMessage{
					{ID: "dm5", Text: "Как дела? Давно не общались.", TimeLabel: "Вчера"},
				},
			},
		},
	}
}
